// Package jdom provides JSON documents as mutable in-memory trees.
//
// The root package is the front door: Parse and Serialize move
// between text and trees, Marshal and Unmarshal move between Go
// values and text, and Diff, Patch and PatchOps implement RFC 7386
// merge patches and RFC 6902 operation patches over trees.
//
//	doc, err := jdom.Parse([]byte(`{"servers": [{"host": "a"}]}`))
//	if err != nil {
//		...
//	}
//	servers, err := doc.At("servers")
//
// # Related Packages
//
//   - github.com/jdom-format/go-jdom/ir - The document tree
//   - github.com/jdom-format/go-jdom/parse - Text to tree
//   - github.com/jdom-format/go-jdom/encode - Tree to text
//   - github.com/jdom-format/go-jdom/gomap - Go structs to trees
//   - github.com/jdom-format/go-jdom/yamlconv - YAML to trees
package jdom
