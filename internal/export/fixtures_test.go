package export

import "github.com/ivlev/cinematool/internal/cinema"

// sampleCinema exercises every section and every action variant. All floats
// have at most six fractional digits so a round trip reproduces them exactly.
func sampleCinema(guid, name string) *cinema.Cinema {
	return &cinema.Cinema{
		GUID:     guid,
		Name:     name,
		Duration: 42.75,
		Properties: cinema.Properties{
			CameraCollision:  true,
			CollisionRadius:  0.35,
			FadeIn:           true,
			FadeInTime:       1.5,
			FadeOut:          true,
			FadeOutTime:      2.25,
			FadeColor:        [4]int{12, 34, 56, 255},
			Skippable:        true,
			Letterbox:        true,
			LetterboxSize:    0.125,
			HideHUD:          true,
			FreezePlayers:    true,
			FreezeEnemies:    false,
			Invulnerable:     true,
			UseBoundingBox:   true,
			BoundingBox:      [6]float64{-100, -5, -100, 100, 50, 100},
			BoundingOffset:   [3]float64{0.5, 0, -0.5},
			StartPosition:    [3]float64{10, 0, 20},
			StartOrientation: [3]float64{0, 90, 0},
			EndPosition:      [3]float64{15.25, 0, 22.5},
			EndOrientation:   [3]float64{0, 180, 0},
			TimeScale:        1,
			MusicCue:         "Theme of the Keep",
			AmbientSound:     "wind_loop",
			Priority:         3,
		},
		Shots: []cinema.Shot{
			{Index: 0, Name: "Establishing", NextShot: 1, SkipShot: 2, MaxDuration: 8, Elapsed: 0},
			{Index: 1, Name: "Close Up", NextShot: 2, SkipShot: 2, MaxDuration: 6.5, Elapsed: 8},
			{Index: 2, Name: "Exit", NextShot: -1, SkipShot: -1, MaxDuration: 4.125, Elapsed: 14.5},
		},
		SyncPoints: []cinema.SyncPoint{
			{Index: 0, Name: "Start", Type: 0, Action: 0, Offset: 0, Shot: 0, FromEnd: false, StartTime: 0},
			{Index: 1, Name: "Before Exit", Type: 1, Action: 3, Offset: 0.75, Shot: 2, FromEnd: true, StartTime: 17.875},
		},
		Actions: []cinema.Action{
			{Index: 0, Name: "Pan", Shot: 0, Offset: 0, Duration: 8, SyncPoint: 0, FinishShot: true, DefaultLength: 8,
				Variant: &cinema.Camera{Target: "CAM-TARGET-1", Path: 1, FOVStart: 60, FOVEnd: 45.5,
					Orientation: [3]float64{0, 15, 0}, Offset: [3]float64{0, 1.75, -3}}},
			{Index: 1, Name: "Wave", Shot: 1, Offset: 0.5, Duration: 2, SyncPoint: 0, DefaultLength: 2,
				Variant: &cinema.CharAnim{Character: "NPC-01", Animation: "wave_hello", Blend: 0.2, Loop: true,
					Position: [3]float64{1, 0, 2}, Orientation: [3]float64{0, -45, 0}}},
			{Index: 2, Name: "Line", Shot: 1, Offset: 1, Duration: 3.5, SyncPoint: 1, DefaultLength: 3.5,
				Variant: &cinema.Dialog{Speaker: "NPC-01", Sample: "Hello there, friend", ForceEnd: true}},
			{Index: 3, Name: "Teleport", Shot: 2, Offset: 0, Duration: 0.1, SyncPoint: 1,
				Variant: &cinema.Pop{Character: "PLAYER", Position: [3]float64{-4, 0, 9.5}, Orientation: [3]float64{0, 270, 0}}},
			{Index: 4, Name: "Flash", Shot: 2, Offset: 1, Duration: 0.5, SyncPoint: 1, DefaultLength: 0.5,
				Variant: &cinema.Fade{Effect: 2, Magnitude: 0.8, Frequency: 4, Color: [4]int{255, 255, 255, 128}, Target: 1}},
			{Index: 5, Name: "Door", Shot: 2, Offset: 1.25, Duration: 2, SyncPoint: 1, DefaultLength: 2,
				Variant: &cinema.ObjAnim{Object: "DOOR-07", Animation: "open", Loop: false, Speed: 1.5}},
			{Index: 6, Name: "Quest", Shot: 2, Offset: 3, Duration: 0, SyncPoint: 1, FinishShot: true,
				Variant: &cinema.Trigger{Trigger: "QUEST-12", Event: "on cinema end", Param: 7}},
		},
		Participants: []string{"NPC-01", "PLAYER", "DOOR-07"},
		CameraPaths: []cinema.CameraPath{
			samplePath("PATH-A", 3),
			samplePath("PATH-B", 5),
		},
	}
}

// samplePath builds a path with n keyframes whose values encode the path
// and row so that mixing keyframes between paths is detectable.
func samplePath(guid string, n int) cinema.CameraPath {
	p := cinema.CameraPath{
		GUID:         guid,
		Position:     [3]float64{1, 2, 3},
		Orientation:  [3]float64{0, 45, 0},
		Scale:        [3]float64{1, 1, 1},
		BoundingBox:  [6]float64{-10, -1, -10, 10, 5, 10},
		Loops:        n - 1,
		Min:          [3]float64{-10, -1, -10},
		Range:        [3]float64{20, 6, 20},
		PlaySpeed:    1.25,
		StartOffset:  [3]float64{0, 0.5, 0},
		EndOffset:    [3]float64{0, -0.5, 0},
		LookAt:       "NPC-01",
		LookAtOffset: [3]float64{0, 1.7, 0},
		Closed:       n%2 == 1,
		Smooth:       true,
		Relative:     false,
	}
	for i := 0; i < n; i++ {
		v := n*1000 + i
		p.Keyframes = append(p.Keyframes, cinema.Keyframe{
			Position:    [3]int{v, -v, i * 100},
			Orientation: [4]int{0, 0, -i, 32766},
		})
	}
	return p
}
