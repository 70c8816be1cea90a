// Package encode renders IR nodes as JSON text.
//
// Two renderings are supported. Minimized, the default, emits no
// whitespace at all and is the canonical form: two structurally equal
// trees (up to object entry order) minimize to texts that reparse to
// equal trees. Pretty emits one value per line with two-space
// indentation (see Indent).
//
// Object entries are written in insertion order. Numbers use the
// shortest decimal form that parses back to the same float64, so
// parse-encode round trips are textually stable for the minimized
// form. Strings escape only what RFC 8259 requires escaped and pass
// other characters through as raw UTF-8.
//
// # Related Packages
//
//   - github.com/jdom-format/go-jdom/ir - The encoded representation
//   - github.com/jdom-format/go-jdom/parse - The inverse operation
//   - github.com/jdom-format/go-jdom/format - Naming of the renderings
package encode
