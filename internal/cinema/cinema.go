package cinema

// KeyframeScale is the divisor that maps raw keyframe integers into [-1, 1]
const KeyframeScale = 32766

// Cinema is one cutscene record
type Cinema struct {
	GUID         string       `yaml:"guid"`
	Name         string       `yaml:"name"`
	Duration     float64      `yaml:"duration"`
	Properties   Properties   `yaml:"properties"`
	Shots        []Shot       `yaml:"shots,omitempty"`
	SyncPoints   []SyncPoint  `yaml:"sync_points,omitempty"`
	Actions      []Action     `yaml:"actions,omitempty"`
	Participants []string     `yaml:"participants,omitempty"`
	CameraPaths  []CameraPath `yaml:"camera_paths,omitempty"`
}

// Properties holds the flat flag bag of a cinema
type Properties struct {
	CameraCollision  bool       `yaml:"camera_collision"`
	CollisionRadius  float64    `yaml:"collision_radius"`
	FadeIn           bool       `yaml:"fade_in"`
	FadeInTime       float64    `yaml:"fade_in_time"`
	FadeOut          bool       `yaml:"fade_out"`
	FadeOutTime      float64    `yaml:"fade_out_time"`
	FadeColor        [4]int     `yaml:"fade_color,flow"`
	Skippable        bool       `yaml:"skippable"`
	Letterbox        bool       `yaml:"letterbox"`
	LetterboxSize    float64    `yaml:"letterbox_size"`
	HideHUD          bool       `yaml:"hide_hud"`
	FreezePlayers    bool       `yaml:"freeze_players"`
	FreezeEnemies    bool       `yaml:"freeze_enemies"`
	Invulnerable     bool       `yaml:"invulnerable"`
	UseBoundingBox   bool       `yaml:"use_bounding_box"`
	BoundingBox      [6]float64 `yaml:"bounding_box,flow"`
	BoundingOffset   [3]float64 `yaml:"bounding_offset,flow"`
	StartPosition    [3]float64 `yaml:"start_position,flow"`
	StartOrientation [3]float64 `yaml:"start_orientation,flow"`
	EndPosition      [3]float64 `yaml:"end_position,flow"`
	EndOrientation   [3]float64 `yaml:"end_orientation,flow"`
	TimeScale        float64    `yaml:"time_scale"`
	MusicCue         string     `yaml:"music_cue"`
	AmbientSound     string     `yaml:"ambient_sound"`
	Priority         int        `yaml:"priority"`
}

// Shot is a camera/scene segment
type Shot struct {
	Index       int     `yaml:"index"`
	Name        string  `yaml:"name"`
	NextShot    int     `yaml:"next_shot"`
	SkipShot    int     `yaml:"skip_shot"`
	MaxDuration float64 `yaml:"max_duration"`
	Elapsed     float64 `yaml:"elapsed"`
}

// SyncPoint is a named timing marker inside a shot
type SyncPoint struct {
	Index     int     `yaml:"index"`
	Name      string  `yaml:"name"`
	Type      int     `yaml:"type"`
	Action    int     `yaml:"action"`
	Offset    float64 `yaml:"offset"`
	Shot      int     `yaml:"shot"`
	FromEnd   bool    `yaml:"from_end"`
	StartTime float64 `yaml:"start_time"`
}

// CameraPath is a keyframed camera curve. Keyframe integers are normalized
// by KeyframeScale and mapped into world space through Min and Range.
type CameraPath struct {
	GUID         string     `yaml:"guid"`
	Position     [3]float64 `yaml:"position,flow"`
	Orientation  [3]float64 `yaml:"orientation,flow"`
	Scale        [3]float64 `yaml:"scale,flow"`
	BoundingBox  [6]float64 `yaml:"bounding_box,flow"`
	Loops        int        `yaml:"loops"`
	Min          [3]float64 `yaml:"min,flow"`
	Range        [3]float64 `yaml:"range,flow"`
	PlaySpeed    float64    `yaml:"play_speed"`
	StartOffset  [3]float64 `yaml:"start_offset,flow"`
	EndOffset    [3]float64 `yaml:"end_offset,flow"`
	LookAt       string     `yaml:"look_at"`
	LookAtOffset [3]float64 `yaml:"look_at_offset,flow"`
	Closed       bool       `yaml:"closed"`
	Smooth       bool       `yaml:"smooth"`
	Relative     bool       `yaml:"relative"`
	Keyframes    []Keyframe `yaml:"keyframes,omitempty"`
}

// Keyframe is one raw pose sample on a camera path
type Keyframe struct {
	Position    [3]int `yaml:"position,flow"`
	Orientation [4]int `yaml:"orientation,flow"`
}
