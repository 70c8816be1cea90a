// Package format names the output formats supported by encode.
//
//   - Minimized: no inter-token whitespace, "," and ":" as sole separators
//   - Pretty: one element per line with configurable indentation
//
// # Related Packages
//
//   - github.com/jdom-format/go-jdom/encode - Encode IR to text
package format
