package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/ivlev/cinematool/internal/cinema"
)

// Separator sits between records of a multi-record file. Decoding does not
// depend on it.
var Separator = "\n" + strings.Repeat("/", 80) + "\n\n"

// Encode renders one cinema in EXPORT format. Positional indices are taken
// from slice positions, not from the Index fields.
func Encode(c *cinema.Cinema) string {
	var b strings.Builder
	writeCinema(&b, c)
	return b.String()
}

// EncodeAll renders several cinemas joined by Separator.
func EncodeAll(cs []*cinema.Cinema) string {
	var b strings.Builder
	for i, c := range cs {
		if i > 0 {
			b.WriteString(Separator)
		}
		writeCinema(&b, c)
	}
	return b.String()
}

// Encoder writes EXPORT text to a stream.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) Encode(cs ...*cinema.Cinema) error {
	_, err := io.WriteString(e.w, EncodeAll(cs))
	return err
}

func writeCinema(b *strings.Builder, c *cinema.Cinema) {
	writeSection(b, SectionCinema, 1, cinemaFields, cinemaValues(c))

	for i, s := range c.Shots {
		writeSection(b, fmt.Sprintf("%s%d", SectionShot, i), 1, shotFields, []string{
			Quote(s.Name),
			FormatInt(s.NextShot),
			FormatInt(s.SkipShot),
			FormatFloat(s.MaxDuration),
			FormatFloat(s.Elapsed),
		})
	}
	b.WriteString("\n")

	for i, sp := range c.SyncPoints {
		writeSection(b, fmt.Sprintf("%s%d", SectionSyncPoint, i), 1, syncPointFields, []string{
			Quote(sp.Name),
			FormatInt(sp.Type),
			FormatInt(sp.Action),
			FormatFloat(sp.Offset),
			FormatInt(sp.Shot),
			FormatBool(sp.FromEnd),
			FormatFloat(sp.StartTime),
		})
	}
	b.WriteString("\n\n")

	for i := range c.Actions {
		a := &c.Actions[i]
		v := a.Payload()
		values := []string{
			FormatInt(TypeCode(v.Kind())),
			Quote(a.Name),
			FormatInt(a.Shot),
			FormatFloat(a.Offset),
			FormatFloat(a.Duration),
			FormatInt(a.SyncPoint),
			FormatBool(a.FinishShot),
			FormatFloat(a.DefaultLength),
		}
		values = append(values, variantValues(v)...)
		writeSection(b, fmt.Sprintf("%s%d", SectionAction, i), 1, ActionFields(v.Kind()), values)
	}
	b.WriteString("\n")

	writeParticipants(b, c.Participants)
	b.WriteString(boilerplate)
	b.WriteString("\n")

	for i := range c.CameraPaths {
		writeCameraPath(b, &c.CameraPaths[i])
		b.WriteString("\n")
	}
}

func cinemaValues(c *cinema.Cinema) []string {
	p := &c.Properties
	return []string{
		FormatIdent(c.GUID),
		Quote(c.Name),
		FormatFloat(c.Duration),
		FormatBool(p.CameraCollision),
		FormatFloat(p.CollisionRadius),
		FormatBool(p.FadeIn),
		FormatFloat(p.FadeInTime),
		FormatBool(p.FadeOut),
		FormatFloat(p.FadeOutTime),
		FormatQuad(p.FadeColor),
		FormatBool(p.Skippable),
		FormatBool(p.Letterbox),
		FormatFloat(p.LetterboxSize),
		FormatBool(p.HideHUD),
		FormatBool(p.FreezePlayers),
		FormatBool(p.FreezeEnemies),
		FormatBool(p.Invulnerable),
		FormatBool(p.UseBoundingBox),
		FormatVec6(p.BoundingBox),
		FormatVec3(p.BoundingOffset),
		FormatVec3(p.StartPosition),
		FormatVec3(p.StartOrientation),
		FormatVec3(p.EndPosition),
		FormatVec3(p.EndOrientation),
		FormatFloat(p.TimeScale),
		Quote(p.MusicCue),
		Quote(p.AmbientSound),
		FormatInt(p.Priority),
	}
}

func writeParticipants(b *strings.Builder, ids []string) {
	fmt.Fprintf(b, "[ %s : %d ]\n", SectionParticipants, len(ids))
	writeDescriptor(b, prefix(SectionParticipants), participantFields, nil)
	for _, id := range ids {
		b.WriteString(FormatIdent(id))
		b.WriteString("\n")
	}
}

func writeCameraPath(b *strings.Builder, p *cinema.CameraPath) {
	writeSection(b, SectionCameraPath, 1, cameraPathFields, []string{
		FormatIdent(p.GUID),
		FormatVec3(p.Position),
		FormatVec3(p.Orientation),
		FormatVec3(p.Scale),
		FormatVec6(p.BoundingBox),
		FormatInt(p.Loops),
		FormatVec3(p.Min),
		FormatVec3(p.Range),
		FormatFloat(p.PlaySpeed),
		FormatVec3(p.StartOffset),
		FormatVec3(p.EndOffset),
		FormatIdent(p.LookAt),
		FormatVec3(p.LookAtOffset),
		FormatBool(p.Closed),
		FormatBool(p.Smooth),
		FormatBool(p.Relative),
	})

	keys := p.Keyframes
	if len(keys) == 0 {
		keys = []cinema.Keyframe{{}}
	}
	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{
			FormatInt(k.Position[0]), FormatInt(k.Position[1]), FormatInt(k.Position[2]),
			FormatInt(k.Orientation[0]), FormatInt(k.Orientation[1]),
			FormatInt(k.Orientation[2]), FormatInt(k.Orientation[3]),
		}
	}
	fmt.Fprintf(b, "[ %s : %d ]\n", SectionKeyframes, len(keys))
	writeDescriptor(b, "", keyframeFields, rows)
	widths := columnWidths("", keyframeFields, rows)
	for _, row := range rows {
		writeRow(b, widths, row)
	}
}

// writeSection writes a header, a field descriptor and one value line with
// aligned columns.
func writeSection(b *strings.Builder, label string, count int, fields []Field, values []string) {
	if len(fields) != len(values) {
		panic(fmt.Sprintf("export: section %s has %d fields but %d values", label, len(fields), len(values)))
	}
	rows := [][]string{values}
	fmt.Fprintf(b, "[ %s : %d ]\n", label, count)
	writeDescriptor(b, prefix(label), fields, rows)
	writeRow(b, columnWidths(prefix(label), fields, rows), values)
}

func writeDescriptor(b *strings.Builder, pfx string, fields []Field, rows [][]string) {
	widths := columnWidths(pfx, fields, rows)
	entries := make([]string, len(fields))
	for i, f := range fields {
		entries[i] = f.entry(pfx)
	}
	b.WriteString("{ ")
	b.WriteString(joinColumns(entries, widths))
	b.WriteString(" }\n")
}

func writeRow(b *strings.Builder, widths []int, values []string) {
	b.WriteString("  ")
	b.WriteString(joinColumns(values, widths))
	b.WriteString("\n")
}

// columnWidths is the widest of descriptor entry, declared width and value
// for every column.
func columnWidths(pfx string, fields []Field, rows [][]string) []int {
	widths := make([]int, len(fields))
	for i, f := range fields {
		widths[i] = max(len(f.entry(pfx)), f.Width)
		for _, row := range rows {
			if i < len(row) {
				widths[i] = max(widths[i], len(row[i]))
			}
		}
	}
	return widths
}

// joinColumns pads every column but the last, so lines carry no trailing spaces.
func joinColumns(cols []string, widths []int) string {
	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i == len(cols)-1 {
			b.WriteString(c)
			continue
		}
		b.WriteString(Pad(c, widths[i]))
	}
	return b.String()
}
