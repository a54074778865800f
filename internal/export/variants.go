package export

import "github.com/ivlev/cinematool/internal/cinema"

// actionBaseFields is shared by every action section, ahead of the variant fields.
var actionBaseFields = []Field{
	{Name: "Type", Type: TypeInt},
	{Name: "Name", Type: TypeString, Width: 16},
	{Name: "Shot", Type: TypeInt},
	{Name: "Offset", Type: TypeFloat},
	{Name: "Duration", Type: TypeFloat},
	{Name: "SyncPoint", Type: TypeInt},
	{Name: "FinishShot", Type: TypeInt},
	{Name: "DefaultLength", Type: TypeFloat},
}

var (
	charAnimFields = []Field{
		{Name: "Character", Type: TypeIdent, Width: 36},
		{Name: "Animation", Type: TypeString},
		{Name: "Blend", Type: TypeFloat},
		{Name: "Loop", Type: TypeInt},
		{Name: "Position", Type: TypeVec3},
		{Name: "Orientation", Type: TypeVec3},
	}
	cameraFields = []Field{
		{Name: "Target", Type: TypeIdent, Width: 36},
		{Name: "Path", Type: TypeInt},
		{Name: "FOVStart", Type: TypeFloat},
		{Name: "FOVEnd", Type: TypeFloat},
		{Name: "Orientation", Type: TypeVec3},
		{Name: "Offset", Type: TypeVec3},
	}
	dialogFields = []Field{
		{Name: "Speaker", Type: TypeIdent, Width: 36},
		{Name: "Sample", Type: TypeString},
		{Name: "ForceEnd", Type: TypeInt},
	}
	popFields = []Field{
		{Name: "Character", Type: TypeIdent, Width: 36},
		{Name: "Position", Type: TypeVec3},
		{Name: "Orientation", Type: TypeVec3},
	}
	fadeFields = []Field{
		{Name: "Effect", Type: TypeInt},
		{Name: "Magnitude", Type: TypeFloat},
		{Name: "Frequency", Type: TypeFloat},
		{Name: "Color", Type: TypeQuad},
		{Name: "Target", Type: TypeFloat},
	}
	objAnimFields = []Field{
		{Name: "Object", Type: TypeIdent, Width: 36},
		{Name: "Animation", Type: TypeString},
		{Name: "Loop", Type: TypeInt},
		{Name: "Speed", Type: TypeFloat},
	}
	triggerFields = []Field{
		{Name: "Trigger", Type: TypeIdent, Width: 36},
		{Name: "Event", Type: TypeString},
		{Name: "Param", Type: TypeInt},
	}
)

// TypeCode returns the numeric type code the engine uses for a kind.
func TypeCode(k cinema.ActionKind) int {
	switch k {
	case cinema.KindCharAnim:
		return 2
	case cinema.KindCamera:
		return 4
	case cinema.KindDialog:
		return 5
	case cinema.KindPop:
		return 6
	case cinema.KindFade:
		return 8
	case cinema.KindObjAnim:
		return 9
	case cinema.KindTrigger:
		return 10
	}
	return 4
}

// KindForCode maps a type code back to its kind. Unknown codes report
// ok=false and fall back to the camera kind.
func KindForCode(code int) (kind cinema.ActionKind, ok bool) {
	switch code {
	case 2:
		return cinema.KindCharAnim, true
	case 4:
		return cinema.KindCamera, true
	case 5:
		return cinema.KindDialog, true
	case 6:
		return cinema.KindPop, true
	case 8:
		return cinema.KindFade, true
	case 9:
		return cinema.KindObjAnim, true
	case 10:
		return cinema.KindTrigger, true
	}
	return cinema.KindCamera, false
}

// VariantFields returns the fields a kind appends after the shared base.
func VariantFields(k cinema.ActionKind) []Field {
	switch k {
	case cinema.KindCharAnim:
		return charAnimFields
	case cinema.KindDialog:
		return dialogFields
	case cinema.KindPop:
		return popFields
	case cinema.KindFade:
		return fadeFields
	case cinema.KindObjAnim:
		return objAnimFields
	case cinema.KindTrigger:
		return triggerFields
	}
	return cameraFields
}

// ActionFields is the full schema of an action section of the given kind.
func ActionFields(k cinema.ActionKind) []Field {
	extra := VariantFields(k)
	fields := make([]Field, 0, len(actionBaseFields)+len(extra))
	fields = append(fields, actionBaseFields...)
	return append(fields, extra...)
}

// decodeVariant reads the payload of kind k. Absent fields keep zero values.
func decodeVariant(k cinema.ActionKind, r Record) cinema.ActionVariant {
	switch k {
	case cinema.KindCharAnim:
		return &cinema.CharAnim{
			Character:   r.Ident("Character", ""),
			Animation:   r.Text("Animation", ""),
			Blend:       r.Float("Blend", 0),
			Loop:        r.Bool("Loop", false),
			Position:    r.Vec3("Position", [3]float64{}),
			Orientation: r.Vec3("Orientation", [3]float64{}),
		}
	case cinema.KindDialog:
		return &cinema.Dialog{
			Speaker:  r.Ident("Speaker", ""),
			Sample:   r.Text("Sample", ""),
			ForceEnd: r.Bool("ForceEnd", false),
		}
	case cinema.KindPop:
		return &cinema.Pop{
			Character:   r.Ident("Character", ""),
			Position:    r.Vec3("Position", [3]float64{}),
			Orientation: r.Vec3("Orientation", [3]float64{}),
		}
	case cinema.KindFade:
		return &cinema.Fade{
			Effect:    r.Int("Effect", 0),
			Magnitude: r.Float("Magnitude", 0),
			Frequency: r.Float("Frequency", 0),
			Color:     r.Quad("Color", [4]int{}),
			Target:    r.Float("Target", 0),
		}
	case cinema.KindObjAnim:
		return &cinema.ObjAnim{
			Object:    r.Ident("Object", ""),
			Animation: r.Text("Animation", ""),
			Loop:      r.Bool("Loop", false),
			Speed:     r.Float("Speed", 0),
		}
	case cinema.KindTrigger:
		return &cinema.Trigger{
			Trigger: r.Ident("Trigger", ""),
			Event:   r.Text("Event", ""),
			Param:   r.Int("Param", 0),
		}
	}
	return &cinema.Camera{
		Target:      r.Ident("Target", ""),
		Path:        r.Int("Path", 0),
		FOVStart:    r.Float("FOVStart", 0),
		FOVEnd:      r.Float("FOVEnd", 0),
		Orientation: r.Vec3("Orientation", [3]float64{}),
		Offset:      r.Vec3("Offset", [3]float64{}),
	}
}

// variantValues renders a payload in the order of VariantFields(v.Kind()).
func variantValues(v cinema.ActionVariant) []string {
	switch p := v.(type) {
	case *cinema.CharAnim:
		return []string{
			FormatIdent(p.Character),
			Quote(p.Animation),
			FormatFloat(p.Blend),
			FormatBool(p.Loop),
			FormatVec3(p.Position),
			FormatVec3(p.Orientation),
		}
	case *cinema.Camera:
		return []string{
			FormatIdent(p.Target),
			FormatInt(p.Path),
			FormatFloat(p.FOVStart),
			FormatFloat(p.FOVEnd),
			FormatVec3(p.Orientation),
			FormatVec3(p.Offset),
		}
	case *cinema.Dialog:
		return []string{
			FormatIdent(p.Speaker),
			Quote(p.Sample),
			FormatBool(p.ForceEnd),
		}
	case *cinema.Pop:
		return []string{
			FormatIdent(p.Character),
			FormatVec3(p.Position),
			FormatVec3(p.Orientation),
		}
	case *cinema.Fade:
		return []string{
			FormatInt(p.Effect),
			FormatFloat(p.Magnitude),
			FormatFloat(p.Frequency),
			FormatQuad(p.Color),
			FormatFloat(p.Target),
		}
	case *cinema.ObjAnim:
		return []string{
			FormatIdent(p.Object),
			Quote(p.Animation),
			FormatBool(p.Loop),
			FormatFloat(p.Speed),
		}
	case *cinema.Trigger:
		return []string{
			FormatIdent(p.Trigger),
			Quote(p.Event),
			FormatInt(p.Param),
		}
	}
	return variantValues(&cinema.Camera{})
}
