// Package ir provides the in-memory representation of JSON documents.
//
// # Overview
//
// All documents (whether parsed from text or built programmatically)
// are trees of ir.Node. A Node is a tagged union over the six JSON
// variants:
//
//   - NullType: null
//   - BoolType: boolean
//   - NumberType: number (a single float64 representation)
//   - StringType: string
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs, keys unique, insertion order kept
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	flag := ir.FromBool(true)
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	obj := ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromInt(3)}})
//
// FromAny converts native values and arbitrarily nested []any /
// map[string]any containers.
//
// # Mutation
//
// Set inserts or updates an object entry. A Null node auto-vivifies
// into an empty Object the first time a key is assigned into it; any
// other non-Object variant rejects the assignment with
// ErrTypeMismatch and is left unchanged. Append behaves symmetrically
// for arrays. At and Index are the non-creating lookups.
//
// # Ownership
//
// A Node exclusively owns its subtree. Mutation installs subtrees, it
// never aliases them, so trees are acyclic by construction. Clone
// deep-copies. Nodes are not safe for concurrent mutation; read-only
// concurrent access to an immutable tree is safe.
//
// # Related Packages
//
//   - github.com/jdom-format/go-jdom/parse - Parses text into IR nodes
//   - github.com/jdom-format/go-jdom/encode - Encodes IR nodes to text
//   - github.com/jdom-format/go-jdom/gomap - Maps IR to Go structs
package ir
