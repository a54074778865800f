package export

import (
	"errors"
	"fmt"

	"github.com/ivlev/cinematool/internal/cinema"
)

var (
	// ErrEmptyInput means the text held nothing but blank and comment lines.
	ErrEmptyInput = errors.New("export: empty input")
	// ErrNoCinema means the text had content but no [ Cinema : N ] section.
	ErrNoCinema = errors.New("export: no cinema section found")
)

// SyntaxError locates a fatal decoding problem.
type SyntaxError struct {
	Line    int
	Section string
	Err     error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d [%s]: %v", e.Line, e.Section, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Diagnostic is a recoverable decoding problem. Decoding continues with
// defaults in place of whatever was wrong.
type Diagnostic struct {
	Line    int
	Section string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d [%s]: %s", d.Line, d.Section, d.Message)
}

// Document is the outcome of a successful decode.
type Document struct {
	Cinemas  []*cinema.Cinema
	Warnings []Diagnostic
}
