// Package parse turns JSON text into IR nodes.
//
// The grammar is RFC 8259 with one relaxation, in numbers only: forms
// such as "2.", "0.e1" and "-.5" that denote an unambiguous float64
// are accepted. Everything else is strict. In particular comments,
// trailing commas, single quotes and unquoted keys are rejected.
//
// Errors wrap ErrParse (or a more specific sentinel such as ErrDepth
// or ErrDupKey) in a *ParseError carrying the input position:
//
//	node, err := parse.Parse(d)
//	var pErr *parse.ParseError
//	if errors.As(err, &pErr) {
//		log.Printf("bad input at offset %d", pErr.Offset())
//	}
//
// # Related Packages
//
//   - github.com/jdom-format/go-jdom/ir - The parsed representation
//   - github.com/jdom-format/go-jdom/encode - The inverse operation
//   - github.com/jdom-format/go-jdom/token - Scanning of strings and numbers
package parse
