package token

import (
	"errors"
)

var (
	ErrBadUTF8           = errors.New("bad utf8")
	ErrUnterminated      = errors.New("unterminated string")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode escape")
	ErrUnicodeControl    = errors.New("unescaped control character")
	ErrNumber            = errors.New("bad number")
	ErrNumberLeadingZero = errors.New("leading zero")
)
