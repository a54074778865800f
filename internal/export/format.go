package export

import (
	"math"
	"strconv"
	"strings"
)

// FormatInt renders an integer in base 10.
func FormatInt(v int) string {
	return strconv.Itoa(v)
}

// TruncInt truncates toward zero, never rounds.
func TruncInt(v float64) int {
	return int(math.Trunc(v))
}

// FormatBool renders a flag as 0 or 1.
func FormatBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// FormatFloat renders six fractional digits, then drops trailing zeros while
// keeping at least two: 1.5 -> 1.50, 1.256637 -> 1.256637.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	end := len(s)
	for end > dot+3 && s[end-1] == '0' {
		end--
	}
	return s[:end]
}

func FormatVec3(v [3]float64) string {
	return joinFloats(v[:])
}

func FormatVec6(v [6]float64) string {
	return joinFloats(v[:])
}

// FormatQuad renders four integers, e.g. an RGBA color.
func FormatQuad(v [4]int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = FormatInt(n)
	}
	return strings.Join(parts, " ")
}

// Quote wraps s in double quotes. Nothing is escaped.
func Quote(s string) string {
	return `"` + s + `"`
}

// FormatIdent emits an identifier verbatim. An empty identifier becomes ""
// so that it still occupies a token.
func FormatIdent(s string) string {
	if s == "" {
		return `""`
	}
	return s
}

// Pad right-pads s with spaces up to width. It is cosmetic only.
func Pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, f := range vs {
		parts[i] = FormatFloat(f)
	}
	return strings.Join(parts, " ")
}
