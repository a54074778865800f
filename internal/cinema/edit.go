package cinema

import "github.com/ivlev/cinematool/internal/ident"

// New creates a record the way the editor does: fresh identifiers for the
// cinema and its camera path, one shot, one sync point and one camera path
// holding a single zero keyframe.
func New(gen ident.Generator, name string) *Cinema {
	return &Cinema{
		GUID:     gen.NewID(),
		Name:     name,
		Duration: 10.0,
		Properties: Properties{
			Skippable:   true,
			FadeIn:      true,
			FadeInTime:  0.5,
			FadeOut:     true,
			FadeOutTime: 0.5,
			FadeColor:   [4]int{0, 0, 0, 255},
			TimeScale:   1.0,
		},
		Shots: []Shot{
			{Name: "Shot", NextShot: -1, SkipShot: -1, MaxDuration: 10.0},
		},
		SyncPoints: []SyncPoint{
			{Name: "Start"},
		},
		CameraPaths: []CameraPath{
			{
				GUID:      gen.NewID(),
				Scale:     [3]float64{1, 1, 1},
				Range:     [3]float64{1, 1, 1},
				PlaySpeed: 1.0,
				Keyframes: []Keyframe{{}},
			},
		},
	}
}

// Reindex rewrites positional indices after the caller inserted, removed or
// reordered elements.
func (c *Cinema) Reindex() {
	for i := range c.Shots {
		c.Shots[i].Index = i
	}
	for i := range c.SyncPoints {
		c.SyncPoints[i].Index = i
	}
	for i := range c.Actions {
		c.Actions[i].Index = i
	}
}

// Clone returns a deep copy.
func (c *Cinema) Clone() *Cinema {
	out := *c
	out.Shots = append([]Shot(nil), c.Shots...)
	out.SyncPoints = append([]SyncPoint(nil), c.SyncPoints...)
	out.Participants = append([]string(nil), c.Participants...)

	out.Actions = append([]Action(nil), c.Actions...)
	for i := range out.Actions {
		out.Actions[i].Variant = cloneVariant(out.Actions[i].Variant)
	}

	out.CameraPaths = append([]CameraPath(nil), c.CameraPaths...)
	for i := range out.CameraPaths {
		out.CameraPaths[i].Keyframes = append([]Keyframe(nil), out.CameraPaths[i].Keyframes...)
	}
	return &out
}

func cloneVariant(v ActionVariant) ActionVariant {
	switch p := v.(type) {
	case *CharAnim:
		c := *p
		return &c
	case *Camera:
		c := *p
		return &c
	case *Dialog:
		c := *p
		return &c
	case *Pop:
		c := *p
		return &c
	case *Fade:
		c := *p
		return &c
	case *ObjAnim:
		c := *p
		return &c
	case *Trigger:
		c := *p
		return &c
	}
	return nil
}
