package export

import (
	"regexp"
	"strconv"
	"strings"
)

// CommentPrefix starts a line comment. The record separator is a comment too.
const CommentPrefix = "//"

var sectionRE = regexp.MustCompile(`^\[\s*([A-Za-z]+)(\d+|-\w+)?\s*:\s*([^\]]*?)\s*\]$`)

// Section is a parsed `[ <Name>[<Index>] : <Count> ]` header.
type Section struct {
	Name string
	// Index is the numeric suffix; HasIndex is false for plain sections and
	// for literal suffixes such as the `-1` of `Action-1`.
	Index    int
	HasIndex bool
	Suffix   string
	// Count is informational and never validated.
	Count int
}

// Label returns the section name as written, e.g. Shot3 or Action-1.
func (s Section) Label() string {
	return s.Name + s.Suffix
}

// ParseSectionHeader recognizes a section header line.
func ParseSectionHeader(line string) (Section, bool) {
	m := sectionRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Section{}, false
	}
	sec := Section{Name: m[1], Suffix: m[2]}
	if m[2] != "" && !strings.HasPrefix(m[2], "-") {
		if n, err := strconv.Atoi(m[2]); err == nil {
			sec.Index = n
			sec.HasIndex = true
		}
	}
	sec.Count, _ = strconv.Atoi(m[3])
	return sec, true
}

func isTrivia(line string) bool {
	return line == "" || strings.HasPrefix(line, CommentPrefix)
}

// isDescriptor reports whether line is a `{ name:type ... }` descriptor.
// Brace-style identifiers such as `{6F9619FF-...}` carry no type tags and
// are not descriptors.
func isDescriptor(line string) bool {
	if !strings.HasPrefix(line, "{") || !strings.HasSuffix(line, "}") || len(line) < 2 {
		return false
	}
	entries := strings.Fields(line[1 : len(line)-1])
	if len(entries) == 0 {
		return false
	}
	for _, e := range entries {
		if !strings.Contains(e, ":") {
			return false
		}
	}
	return true
}

func isSection(line string) bool {
	_, ok := ParseSectionHeader(line)
	return ok
}

// Cursor walks the lines of a text buffer once, front to back.
type Cursor struct {
	lines []string
	pos   int
}

func NewCursor(text string) *Cursor {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &Cursor{lines: lines}
}

// Peek returns the current line, trimmed, without consuming it.
func (c *Cursor) Peek() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	return strings.TrimSpace(c.lines[c.pos]), true
}

func (c *Cursor) Advance() {
	if c.pos < len(c.lines) {
		c.pos++
	}
}

// Line is the 1-based number of the current line.
func (c *Cursor) Line() int {
	return c.pos + 1
}

func (c *Cursor) Done() bool {
	return c.pos >= len(c.lines)
}

// SkipTrivia moves past blank and comment lines.
func (c *Cursor) SkipTrivia() {
	for {
		line, ok := c.Peek()
		if !ok || !isTrivia(line) {
			return
		}
		c.Advance()
	}
}

// Pair consumes a field-descriptor line and the value line after it.
// The value is the next non-blank line, whatever it starts with. ok is false
// when the next meaningful line is not a descriptor; value is empty when the
// descriptor is directly followed by a header or another descriptor.
func (c *Cursor) Pair() (desc, value string, ok bool) {
	c.SkipTrivia()
	line, more := c.Peek()
	if !more || !isDescriptor(line) {
		return "", "", false
	}
	desc = line
	c.Advance()

	for {
		line, more = c.Peek()
		if !more || line != "" {
			break
		}
		c.Advance()
	}
	if more && !isSection(line) && !isDescriptor(line) {
		value = line
		c.Advance()
	}
	return desc, value, true
}
