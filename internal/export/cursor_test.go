package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectionHeader(t *testing.T) {
	tests := []struct {
		line string
		ok   bool
		want Section
	}{
		{"[ Cinema : 1 ]", true, Section{Name: "Cinema", Count: 1}},
		{"[Cinema:1]", true, Section{Name: "Cinema", Count: 1}},
		{"  [ Shot12 : 1 ]  ", true, Section{Name: "Shot", Index: 12, HasIndex: true, Suffix: "12", Count: 1}},
		{"[ SyncPoint0 : 1 ]", true, Section{Name: "SyncPoint", HasIndex: true, Suffix: "0", Count: 1}},
		{"[ Action-1 : 1 ]", true, Section{Name: "Action", Suffix: "-1", Count: 1}},
		{"[ Participants : 3 ]", true, Section{Name: "Participants", Count: 3}},
		{"[ Keyframes : many ]", true, Section{Name: "Keyframes"}},
		{"{ Shot0\\Name:s }", false, Section{}},
		{"[ Shot0 ]", false, Section{}},
		{"plain text", false, Section{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ParseSectionHeader(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSectionLabel(t *testing.T) {
	sec, ok := ParseSectionHeader("[ Action-2 : 1 ]")
	require.True(t, ok)
	assert.Equal(t, "Action-2", sec.Label())
}

func TestCursorPair(t *testing.T) {
	c := NewCursor("// note\n{ A:d B:d }\r\n\n\n  1 2\n[ Next : 1 ]\n")

	desc, value, ok := c.Pair()
	require.True(t, ok)
	assert.Equal(t, "{ A:d B:d }", desc)
	assert.Equal(t, "1 2", value)

	line, more := c.Peek()
	require.True(t, more)
	assert.Equal(t, "[ Next : 1 ]", line)
	assert.Equal(t, 6, c.Line())
}

func TestCursorPairValueLooksLikeMarkup(t *testing.T) {
	for _, value := range []string{
		"{6F9619FF-8B86-D011-B42D-00C04FC964FF} \"Intro\"",
		"{6F9619FF-8B86-D011-B42D-00C04FC964FF}",
		"//GATE-01 1",
	} {
		t.Run(value, func(t *testing.T) {
			c := NewCursor("{ A:g B:s }\n  " + value + "\n[ Next : 1 ]")
			_, got, ok := c.Pair()
			require.True(t, ok)
			assert.Equal(t, value, got)
		})
	}
}

func TestCursorPairFollowedByDescriptor(t *testing.T) {
	c := NewCursor("{ A:d }\n{ B:d }\n  7")

	_, value, ok := c.Pair()
	require.True(t, ok)
	assert.Empty(t, value)

	desc, value, ok := c.Pair()
	require.True(t, ok)
	assert.Equal(t, "{ B:d }", desc)
	assert.Equal(t, "7", value)
}

func TestIsDescriptor(t *testing.T) {
	assert.True(t, isDescriptor(`{ Cinema\GUID:g Cinema\Name:s }`))
	assert.True(t, isDescriptor("{A:d}"))
	assert.False(t, isDescriptor("{6F9619FF-8B86-D011-B42D-00C04FC964FF}"))
	assert.False(t, isDescriptor("{ }"))
	assert.False(t, isDescriptor("{"))
	assert.False(t, isDescriptor(`{ABC} "Name" 1.00`))
}

func TestCursorPairWithoutValue(t *testing.T) {
	c := NewCursor("{ A:d }\n[ Next : 1 ]")

	desc, value, ok := c.Pair()
	require.True(t, ok)
	assert.Equal(t, "{ A:d }", desc)
	assert.Empty(t, value)

	line, _ := c.Peek()
	assert.Equal(t, "[ Next : 1 ]", line)
}

func TestCursorPairWithoutDescriptor(t *testing.T) {
	c := NewCursor("[ Next : 1 ]")

	_, _, ok := c.Pair()
	assert.False(t, ok)
	assert.False(t, c.Done())
}
