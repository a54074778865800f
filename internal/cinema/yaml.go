package cinema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// actionDoc is the YAML shape of an Action: the shared fields plus a type
// name and exactly one populated payload block.
type actionDoc struct {
	Index         int     `yaml:"index"`
	Name          string  `yaml:"name"`
	Type          string  `yaml:"type"`
	Shot          int     `yaml:"shot"`
	Offset        float64 `yaml:"offset"`
	Duration      float64 `yaml:"duration"`
	SyncPoint     int     `yaml:"sync_point"`
	FinishShot    bool    `yaml:"finish_shot"`
	DefaultLength float64 `yaml:"default_length"`

	CharAnim *CharAnim `yaml:"char_anim,omitempty"`
	Camera   *Camera   `yaml:"camera,omitempty"`
	Dialog   *Dialog   `yaml:"dialog,omitempty"`
	Pop      *Pop      `yaml:"pop,omitempty"`
	Fade     *Fade     `yaml:"fade,omitempty"`
	ObjAnim  *ObjAnim  `yaml:"obj_anim,omitempty"`
	Trigger  *Trigger  `yaml:"trigger,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (a Action) MarshalYAML() (interface{}, error) {
	doc := actionDoc{
		Index:         a.Index,
		Name:          a.Name,
		Type:          a.Kind().String(),
		Shot:          a.Shot,
		Offset:        a.Offset,
		Duration:      a.Duration,
		SyncPoint:     a.SyncPoint,
		FinishShot:    a.FinishShot,
		DefaultLength: a.DefaultLength,
	}
	switch v := a.Payload().(type) {
	case *CharAnim:
		doc.CharAnim = v
	case *Camera:
		doc.Camera = v
	case *Dialog:
		doc.Dialog = v
	case *Pop:
		doc.Pop = v
	case *Fade:
		doc.Fade = v
	case *ObjAnim:
		doc.ObjAnim = v
	case *Trigger:
		doc.Trigger = v
	}
	return doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A missing type defaults to camera.
func (a *Action) UnmarshalYAML(value *yaml.Node) error {
	var doc actionDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}

	kind := KindCamera
	if doc.Type != "" {
		k, ok := ParseKind(doc.Type)
		if !ok {
			return fmt.Errorf("line %d: unknown action type %q", value.Line, doc.Type)
		}
		kind = k
	}

	var v ActionVariant
	switch kind {
	case KindCharAnim:
		if doc.CharAnim != nil {
			v = doc.CharAnim
		}
	case KindCamera:
		if doc.Camera != nil {
			v = doc.Camera
		}
	case KindDialog:
		if doc.Dialog != nil {
			v = doc.Dialog
		}
	case KindPop:
		if doc.Pop != nil {
			v = doc.Pop
		}
	case KindFade:
		if doc.Fade != nil {
			v = doc.Fade
		}
	case KindObjAnim:
		if doc.ObjAnim != nil {
			v = doc.ObjAnim
		}
	case KindTrigger:
		if doc.Trigger != nil {
			v = doc.Trigger
		}
	}
	if v == nil {
		v = NewVariant(kind)
	}

	*a = Action{
		Index:         doc.Index,
		Name:          doc.Name,
		Shot:          doc.Shot,
		Offset:        doc.Offset,
		Duration:      doc.Duration,
		SyncPoint:     doc.SyncPoint,
		FinishShot:    doc.FinishShot,
		DefaultLength: doc.DefaultLength,
		Variant:       v,
	}
	return nil
}
