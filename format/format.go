package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	Minimized Format = iota
	Pretty
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"m":         Minimized,
		"min":       Minimized,
		"minimized": Minimized,
		"p":         Pretty,
		"pretty":    Pretty,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case Minimized:
		return []byte("minimized"), nil
	case Pretty:
		return []byte("pretty"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsMinimized() bool { return f == Minimized }
func (f Format) IsPretty() bool    { return f == Pretty }

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{Minimized, Pretty}
}
