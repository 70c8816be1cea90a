package parse

import (
	"errors"
	"fmt"

	"github.com/jdom-format/go-jdom/token"
)

var (
	ErrParse    = errors.New("parse error")
	ErrEmptyDoc = errors.New("empty document")
	ErrTrailing = errors.New("trailing data after value")
	ErrDepth    = errors.New("max nesting depth exceeded")
	ErrDupKey   = errors.New("duplicate object key")
)

// A ParseError wraps a parse failure with the position at which it
// occurred.
type ParseError struct {
	Pos *token.Pos
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Offset is the byte offset of the failure in the input.
func (e *ParseError) Offset() int {
	return e.Pos.I
}
