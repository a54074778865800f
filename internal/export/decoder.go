package export

import (
	"fmt"
	"strings"

	"github.com/ivlev/cinematool/internal/cinema"
)

// Decode parses every cinema in an EXPORT text. Malformed sections are
// skipped or defaulted and reported as warnings; only text without any
// cinema section is an error (ErrEmptyInput or a *SyntaxError wrapping
// ErrNoCinema).
func Decode(text string) (*Document, error) {
	d := &decoder{cur: NewCursor(text)}
	return d.run()
}

// Unmarshal is Decode without diagnostics: it returns nil when nothing
// could be parsed.
func Unmarshal(text string) []*cinema.Cinema {
	doc, err := Decode(text)
	if err != nil {
		return nil
	}
	return doc.Cinemas
}

type decoder struct {
	cur      *Cursor
	warnings []Diagnostic
}

func (d *decoder) warn(line int, section, format string, args ...interface{}) {
	d.warnings = append(d.warnings, Diagnostic{
		Line:    line,
		Section: section,
		Message: fmt.Sprintf(format, args...),
	})
}

func (d *decoder) run() (*Document, error) {
	doc := &Document{}
	firstContent := 0

	for {
		line, ok := d.cur.Peek()
		if !ok {
			break
		}
		if isTrivia(line) {
			d.cur.Advance()
			continue
		}
		if firstContent == 0 {
			firstContent = d.cur.Line()
		}
		if sec, ok := ParseSectionHeader(line); ok && sec.Name == SectionCinema {
			doc.Cinemas = append(doc.Cinemas, d.cinema(sec))
			continue
		}
		// content outside any cinema
		d.cur.Advance()
	}

	doc.Warnings = d.warnings
	if len(doc.Cinemas) == 0 {
		if firstContent == 0 {
			return nil, ErrEmptyInput
		}
		return nil, &SyntaxError{Line: firstContent, Section: SectionCinema, Err: ErrNoCinema}
	}
	return doc, nil
}

// cinema decodes one record starting at its [ Cinema : N ] header and stops
// in front of the next one, leaving it unconsumed.
func (d *decoder) cinema(header Section) *cinema.Cinema {
	d.cur.Advance()
	r := d.record(header)
	c := &cinema.Cinema{
		GUID:     r.Ident("GUID", ""),
		Name:     r.Text("Name", ""),
		Duration: r.Float("Duration", 0),
		Properties: cinema.Properties{
			CameraCollision:  r.Bool("CameraCollision", false),
			CollisionRadius:  r.Float("CollisionRadius", 0),
			FadeIn:           r.Bool("FadeIn", false),
			FadeInTime:       r.Float("FadeInTime", 0),
			FadeOut:          r.Bool("FadeOut", false),
			FadeOutTime:      r.Float("FadeOutTime", 0),
			FadeColor:        r.Quad("FadeColor", [4]int{}),
			Skippable:        r.Bool("Skippable", false),
			Letterbox:        r.Bool("Letterbox", false),
			LetterboxSize:    r.Float("LetterboxSize", 0),
			HideHUD:          r.Bool("HideHUD", false),
			FreezePlayers:    r.Bool("FreezePlayers", false),
			FreezeEnemies:    r.Bool("FreezeEnemies", false),
			Invulnerable:     r.Bool("Invulnerable", false),
			UseBoundingBox:   r.Bool("UseBoundingBox", false),
			BoundingBox:      r.Vec6("BoundingBox", [6]float64{}),
			BoundingOffset:   r.Vec3("BoundingOffset", [3]float64{}),
			StartPosition:    r.Vec3("StartPosition", [3]float64{}),
			StartOrientation: r.Vec3("StartOrientation", [3]float64{}),
			EndPosition:      r.Vec3("EndPosition", [3]float64{}),
			EndOrientation:   r.Vec3("EndOrientation", [3]float64{}),
			TimeScale:        r.Float("TimeScale", 1),
			MusicCue:         r.Text("MusicCue", ""),
			AmbientSound:     r.Text("AmbientSound", ""),
			Priority:         r.Int("Priority", 0),
		},
	}

	for {
		line, ok := d.cur.Peek()
		if !ok {
			break
		}
		if isTrivia(line) {
			d.cur.Advance()
			continue
		}
		sec, ok := ParseSectionHeader(line)
		if !ok {
			d.cur.Advance()
			continue
		}
		if sec.Name == SectionCinema {
			break
		}
		at := d.cur.Line()
		d.cur.Advance()

		switch sec.Name {
		case SectionShot:
			if !d.indexed(sec, at) {
				continue
			}
			c.Shots = append(c.Shots, d.shot(sec))
		case SectionSyncPoint:
			if !d.indexed(sec, at) {
				continue
			}
			c.SyncPoints = append(c.SyncPoints, d.syncPoint(sec))
		case SectionAction:
			if !sec.HasIndex {
				// Action-1 / Action-2: fixed engine boilerplate, nothing to keep
				d.cur.Pair()
				continue
			}
			c.Actions = append(c.Actions, d.action(sec))
		case SectionParticipants:
			c.Participants = append(c.Participants, d.participants()...)
		case SectionCameraPath:
			c.CameraPaths = append(c.CameraPaths, d.cameraPath(sec))
		case SectionKeyframes:
			d.warn(at, sec.Label(), "keyframes without a camera path, skipped")
		default:
			d.warn(at, sec.Label(), "unknown section, skipped")
		}
	}
	return c
}

func (d *decoder) indexed(sec Section, line int) bool {
	if !sec.HasIndex {
		d.warn(line, sec.Label(), "section needs a numeric index, skipped")
		return false
	}
	return true
}

// record binds the descriptor/value pair following a section header.
func (d *decoder) record(sec Section) Record {
	r := Record{Prefix: prefix(sec.Label())}
	line := d.cur.Line()
	desc, value, ok := d.cur.Pair()
	if !ok {
		d.warn(line, sec.Label(), "missing field descriptor, using defaults")
		return r
	}
	fields := ParseDescriptor(desc)
	r.Values = Bind(fields, value)

	var missing []string
	for _, f := range fields {
		if _, bound := r.Values[f.Name]; !bound {
			missing = append(missing, strings.TrimPrefix(f.Name, r.Prefix))
		}
	}
	if len(missing) > 0 {
		d.warn(line, sec.Label(), "no value for %s, using defaults", strings.Join(missing, ", "))
	}
	return r
}

func (d *decoder) shot(sec Section) cinema.Shot {
	r := d.record(sec)
	return cinema.Shot{
		Index:       sec.Index,
		Name:        r.Text("Name", ""),
		NextShot:    r.Int("NextShot", -1),
		SkipShot:    r.Int("SkipShot", -1),
		MaxDuration: r.Float("MaxDuration", 0),
		Elapsed:     r.Float("Elapsed", 0),
	}
}

func (d *decoder) syncPoint(sec Section) cinema.SyncPoint {
	r := d.record(sec)
	return cinema.SyncPoint{
		Index:     sec.Index,
		Name:      r.Text("Name", ""),
		Type:      r.Int("Type", 0),
		Action:    r.Int("Action", 0),
		Offset:    r.Float("Offset", 0),
		Shot:      r.Int("Shot", 0),
		FromEnd:   r.Bool("FromEnd", false),
		StartTime: r.Float("StartTime", 0),
	}
}

func (d *decoder) action(sec Section) cinema.Action {
	line := d.cur.Line()
	r := d.record(sec)

	code := r.Int("Type", TypeCode(cinema.KindCamera))
	kind, known := KindForCode(code)
	if !known {
		d.warn(line, sec.Label(), "unknown action type %d, decoded as camera", code)
	}

	return cinema.Action{
		Index:         sec.Index,
		Name:          r.Text("Name", ""),
		Shot:          r.Int("Shot", 0),
		Offset:        r.Float("Offset", 0),
		Duration:      r.Float("Duration", 0),
		SyncPoint:     r.Int("SyncPoint", 0),
		FinishShot:    r.Bool("FinishShot", false),
		DefaultLength: r.Float("DefaultLength", 0),
		Variant:       decodeVariant(kind, r),
	}
}

// participants reads one identifier per line, verbatim, up to a blank line
// or the next section.
func (d *decoder) participants() []string {
	if line, ok := d.cur.Peek(); ok && isDescriptor(line) {
		d.cur.Advance()
	}
	var ids []string
	for {
		line, ok := d.cur.Peek()
		if !ok || line == "" || isSection(line) {
			return ids
		}
		d.cur.Advance()
		ids = append(ids, Unquote(line))
	}
}

func (d *decoder) cameraPath(sec Section) cinema.CameraPath {
	r := d.record(sec)
	p := cinema.CameraPath{
		GUID:         r.Ident("GUID", ""),
		Position:     r.Vec3("Position", [3]float64{}),
		Orientation:  r.Vec3("Orientation", [3]float64{}),
		Scale:        r.Vec3("Scale", [3]float64{1, 1, 1}),
		BoundingBox:  r.Vec6("BoundingBox", [6]float64{}),
		Loops:        r.Int("Loops", 0),
		Min:          r.Vec3("Min", [3]float64{}),
		Range:        r.Vec3("Range", [3]float64{1, 1, 1}),
		PlaySpeed:    r.Float("PlaySpeed", 1),
		StartOffset:  r.Vec3("StartOffset", [3]float64{}),
		EndOffset:    r.Vec3("EndOffset", [3]float64{}),
		LookAt:       r.Ident("LookAt", ""),
		LookAtOffset: r.Vec3("LookAtOffset", [3]float64{}),
		Closed:       r.Bool("Closed", false),
		Smooth:       r.Bool("Smooth", false),
		Relative:     r.Bool("Relative", false),
	}

	d.cur.SkipTrivia()
	if line, ok := d.cur.Peek(); ok {
		if next, ok := ParseSectionHeader(line); ok && next.Name == SectionKeyframes {
			d.cur.Advance()
			p.Keyframes = d.keyframes(next)
		}
	}
	if len(p.Keyframes) == 0 {
		p.Keyframes = []cinema.Keyframe{{}}
	}
	return p
}

// keyframes reads seven-integer rows up to a blank line or the next section.
func (d *decoder) keyframes(sec Section) []cinema.Keyframe {
	var out []cinema.Keyframe
	for {
		line, ok := d.cur.Peek()
		if !ok || line == "" || isSection(line) {
			return out
		}
		at := d.cur.Line()
		d.cur.Advance()
		if isDescriptor(line) || strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		parts := strings.Fields(line)
		var vals [7]int
		bad := len(parts) != len(vals)
		for i := 0; i < len(vals) && i < len(parts); i++ {
			n, ok := parseInt(parts[i])
			if !ok {
				bad = true
				continue
			}
			vals[i] = n
		}
		if bad {
			d.warn(at, sec.Label(), "keyframe %q is not seven integers", line)
		}
		out = append(out, cinema.Keyframe{
			Position:    [3]int{vals[0], vals[1], vals[2]},
			Orientation: [4]int{vals[3], vals[4], vals[5], vals[6]},
		})
	}
}
