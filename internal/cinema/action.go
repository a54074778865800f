package cinema

// ActionKind discriminates the action variants
type ActionKind int

const (
	KindCharAnim ActionKind = iota
	KindCamera
	KindDialog
	KindPop
	KindFade
	KindObjAnim
	KindTrigger
)

var kindNames = [...]string{
	KindCharAnim: "char_anim",
	KindCamera:   "camera",
	KindDialog:   "dialog",
	KindPop:      "pop",
	KindFade:     "fade",
	KindObjAnim:  "obj_anim",
	KindTrigger:  "trigger",
}

// String returns the kind name used in YAML scenarios.
func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind is the inverse of ActionKind.String.
func ParseKind(name string) (ActionKind, bool) {
	for i, n := range kindNames {
		if n == name {
			return ActionKind(i), true
		}
	}
	return KindCamera, false
}

// Action is a time-scoped instruction bound to a shot and a sync point.
// The shared fields live here, the variant payload in Variant.
type Action struct {
	Index         int
	Name          string
	Shot          int
	Offset        float64
	Duration      float64
	SyncPoint     int
	FinishShot    bool
	DefaultLength float64
	Variant       ActionVariant
}

// Kind reports the variant kind. A nil variant counts as a camera action.
func (a *Action) Kind() ActionKind {
	if a.Variant == nil {
		return KindCamera
	}
	return a.Variant.Kind()
}

// Payload returns the variant, substituting the default camera payload for nil.
func (a *Action) Payload() ActionVariant {
	if a.Variant == nil {
		return &Camera{}
	}
	return a.Variant
}

// ActionVariant is implemented only by the payload types of this package.
type ActionVariant interface {
	Kind() ActionKind
	isVariant()
}

type CharAnim struct {
	Character   string     `yaml:"character"`
	Animation   string     `yaml:"animation"`
	Blend       float64    `yaml:"blend"`
	Loop        bool       `yaml:"loop"`
	Position    [3]float64 `yaml:"position,flow"`
	Orientation [3]float64 `yaml:"orientation,flow"`
}

type Camera struct {
	Target      string     `yaml:"target"`
	Path        int        `yaml:"path"`
	FOVStart    float64    `yaml:"fov_start"`
	FOVEnd      float64    `yaml:"fov_end"`
	Orientation [3]float64 `yaml:"orientation,flow"`
	Offset      [3]float64 `yaml:"offset,flow"`
}

type Dialog struct {
	Speaker  string `yaml:"speaker"`
	Sample   string `yaml:"sample"`
	ForceEnd bool   `yaml:"force_end"`
}

// Pop teleports a character.
type Pop struct {
	Character   string     `yaml:"character"`
	Position    [3]float64 `yaml:"position,flow"`
	Orientation [3]float64 `yaml:"orientation,flow"`
}

type Fade struct {
	Effect    int     `yaml:"effect"`
	Magnitude float64 `yaml:"magnitude"`
	Frequency float64 `yaml:"frequency"`
	Color     [4]int  `yaml:"color,flow"`
	Target    float64 `yaml:"target"`
}

type ObjAnim struct {
	Object    string  `yaml:"object"`
	Animation string  `yaml:"animation"`
	Loop      bool    `yaml:"loop"`
	Speed     float64 `yaml:"speed"`
}

type Trigger struct {
	Trigger string `yaml:"trigger"`
	Event   string `yaml:"event"`
	Param   int    `yaml:"param"`
}

func (*CharAnim) Kind() ActionKind { return KindCharAnim }
func (*Camera) Kind() ActionKind   { return KindCamera }
func (*Dialog) Kind() ActionKind   { return KindDialog }
func (*Pop) Kind() ActionKind      { return KindPop }
func (*Fade) Kind() ActionKind     { return KindFade }
func (*ObjAnim) Kind() ActionKind  { return KindObjAnim }
func (*Trigger) Kind() ActionKind  { return KindTrigger }

func (*CharAnim) isVariant() {}
func (*Camera) isVariant()   {}
func (*Dialog) isVariant()   {}
func (*Pop) isVariant()      {}
func (*Fade) isVariant()     {}
func (*ObjAnim) isVariant()  {}
func (*Trigger) isVariant()  {}

// NewVariant returns a zero payload of the given kind.
func NewVariant(k ActionKind) ActionVariant {
	switch k {
	case KindCharAnim:
		return &CharAnim{}
	case KindDialog:
		return &Dialog{}
	case KindPop:
		return &Pop{}
	case KindFade:
		return &Fade{}
	case KindObjAnim:
		return &ObjAnim{}
	case KindTrigger:
		return &Trigger{}
	default:
		return &Camera{}
	}
}
