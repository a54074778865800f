package export

import (
	"strconv"
	"strings"
)

// FieldType is the type tag of a field descriptor entry.
type FieldType string

const (
	TypeString FieldType = "s"
	TypeIdent  FieldType = "g"
	TypeInt    FieldType = "d"
	TypeFloat  FieldType = "f"
	TypeVec3   FieldType = "fff"
	TypeVec6   FieldType = "ffffff"
	TypeQuad   FieldType = "dddd"
)

// Arity is the number of value tokens a field of this type consumes.
// Unknown tags are treated as scalars.
func (t FieldType) Arity() int {
	switch t {
	case TypeVec3:
		return 3
	case TypeVec6:
		return 6
	case TypeQuad:
		return 4
	default:
		return 1
	}
}

// Field is one `name:type` entry of a field-descriptor line. Width is a
// minimum column width used only when writing.
type Field struct {
	Name  string
	Type  FieldType
	Width int
}

func (f Field) entry(prefix string) string {
	return prefix + f.Name + ":" + string(f.Type)
}

// ParseDescriptor parses a `{ name1:type1 name2:type2 ... }` line.
func ParseDescriptor(line string) []Field {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "{")
	line = strings.TrimSuffix(line, "}")

	var fields []Field
	for _, entry := range strings.Fields(line) {
		name, typ, _ := strings.Cut(entry, ":")
		fields = append(fields, Field{Name: name, Type: FieldType(typ)})
	}
	return fields
}

// Bind assigns value tokens to fields in order, each field taking as many
// tokens as its arity. Multi-token values are joined with one space.
// Binding stops at the first field the remaining tokens cannot fill.
func Bind(fields []Field, valueLine string) map[string]string {
	tokens := Tokenize(valueLine)
	out := make(map[string]string, len(fields))
	pos := 0
	for _, f := range fields {
		n := f.Type.Arity()
		if pos+n > len(tokens) {
			break
		}
		out[f.Name] = strings.Join(tokens[pos:pos+n], " ")
		pos += n
	}
	return out
}

// Record is a bound value line read through a section's field-name prefix,
// e.g. `Shot2\`. Every accessor falls back to def when the field is absent
// or does not parse.
type Record struct {
	Prefix string
	Values map[string]string
}

func (r Record) raw(name string) (string, bool) {
	v, ok := r.Values[r.Prefix+name]
	return v, ok
}

// Has reports whether the value line bound the field.
func (r Record) Has(name string) bool {
	_, ok := r.raw(name)
	return ok
}

// Text reads a string, quoted or bare.
func (r Record) Text(name, def string) string {
	v, ok := r.raw(name)
	if !ok {
		return def
	}
	return Unquote(v)
}

// Ident reads an unquoted identifier; the `""` placeholder for an empty
// identifier reads back as "".
func (r Record) Ident(name, def string) string {
	v, ok := r.raw(name)
	if !ok {
		return def
	}
	return Unquote(v)
}

// Int reads a decimal integer.
func (r Record) Int(name string, def int) int {
	v, ok := r.raw(name)
	if !ok {
		return def
	}
	n, ok := parseInt(v)
	if !ok {
		return def
	}
	return n
}

// Float reads a decimal number.
func (r Record) Float(name string, def float64) float64 {
	v, ok := r.raw(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Bool reads a 0/1 flag; any non-zero integer is true.
func (r Record) Bool(name string, def bool) bool {
	v, ok := r.raw(name)
	if !ok {
		return def
	}
	n, ok := parseInt(v)
	if !ok {
		return def
	}
	return n != 0
}

// Vec3 reads three floats.
func (r Record) Vec3(name string, def [3]float64) [3]float64 {
	var out [3]float64
	if !r.floats(name, out[:]) {
		return def
	}
	return out
}

// Vec6 reads six floats.
func (r Record) Vec6(name string, def [6]float64) [6]float64 {
	var out [6]float64
	if !r.floats(name, out[:]) {
		return def
	}
	return out
}

// Quad reads four integers.
func (r Record) Quad(name string, def [4]int) [4]int {
	v, ok := r.raw(name)
	if !ok {
		return def
	}
	parts := strings.Fields(v)
	if len(parts) != 4 {
		return def
	}
	var out [4]int
	for i, p := range parts {
		n, ok := parseInt(p)
		if !ok {
			return def
		}
		out[i] = n
	}
	return out
}

func (r Record) floats(name string, dst []float64) bool {
	v, ok := r.raw(name)
	if !ok {
		return false
	}
	parts := strings.Fields(v)
	if len(parts) != len(dst) {
		return false
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return false
		}
		dst[i] = f
	}
	return true
}

// parseInt accepts plain integers and, for hand-edited files, decimals,
// which are truncated toward zero.
func parseInt(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return TruncInt(f), true
}
