package encode

import "github.com/jdom-format/go-jdom/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func Minimized() EncodeOption {
	return EncodeFormat(format.Minimized)
}

func Pretty() EncodeOption {
	return EncodeFormat(format.Pretty)
}

// Indent sets the number of spaces per nesting level in Pretty mode.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
