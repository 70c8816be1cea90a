// Package token provides the grammar primitives shared by the parser
// and encoder: position tracking, JSON string quoting and unquoting,
// and the number scanner.
package token
