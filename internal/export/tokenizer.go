package export

import "strings"

// Tokenize splits a value line on spaces and tabs. A run between double
// quotes is one token and keeps its quotes; an unterminated quote runs to
// the end of the line. Embedded quotes cannot be escaped.
func Tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	quoted := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			quoted = !quoted
			cur.WriteByte(c)
		case (c == ' ' || c == '\t') && !quoted:
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return tokens
}

// Unquote strips the surrounding quotes of a string token, tolerating a
// missing closing quote.
func Unquote(tok string) string {
	if !strings.HasPrefix(tok, `"`) {
		return tok
	}
	tok = tok[1:]
	return strings.TrimSuffix(tok, `"`)
}
