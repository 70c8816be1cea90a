package jdom

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jdom-format/go-jdom/debug"
	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/parse"
)

// Patch applies an RFC 7386 merge patch to doc and returns the
// patched document. Neither input is modified.
func Patch(doc, patch *ir.Node) (*ir.Node, error) {
	dd, err := SerializeBytes(doc)
	if err != nil {
		return nil, err
	}
	dp, err := SerializeBytes(patch)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.MergePatch(dd, dp)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge %s with %s: %s\n", dd, dp, res)
	}
	return parse.Parse(res)
}

// PatchOps applies an RFC 6902 operation list (add, remove, replace,
// move, copy, test) to doc.
func PatchOps(doc, ops *ir.Node) (*ir.Node, error) {
	dd, err := SerializeBytes(doc)
	if err != nil {
		return nil, err
	}
	dops, err := SerializeBytes(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch(dops)
	if err != nil {
		return nil, err
	}
	res, err := p.Apply(dd)
	if err != nil {
		return nil, err
	}
	return parse.Parse(res)
}

// PatchFiles reads a document and a merge patch from files and
// returns the patched document.
func PatchFiles(docPath, patchPath string) (*ir.Node, error) {
	doc, err := parse.ParseFile(docPath)
	if err != nil {
		return nil, err
	}
	patch, err := parse.ParseFile(patchPath)
	if err != nil {
		return nil, err
	}
	return Patch(doc, patch)
}
