package jdom

import (
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jdom-format/go-jdom/debug"
	"github.com/jdom-format/go-jdom/encode"
	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/parse"
)

// Diff computes an RFC 7386 merge patch p such that Patch(a, p) equals
// b up to object entry order.
func Diff(a, b *ir.Node) (*ir.Node, error) {
	da, err := SerializeBytes(a)
	if err != nil {
		return nil, err
	}
	db, err := SerializeBytes(b)
	if err != nil {
		return nil, err
	}
	dp, err := jsonpatch.CreateMergePatch(da, db)
	if err != nil {
		return nil, err
	}
	if debug.Diff() {
		debug.Logf("merge patch %s -> %s: %s\n", da, db, dp)
	}
	return parse.Parse(dp)
}

// TextDiff renders a line-oriented patch between the pretty forms of a
// and b, for human consumption.
func TextDiff(a, b *ir.Node) (string, error) {
	ta := encode.MustString(a, encode.Pretty())
	tb := encode.MustString(b, encode.Pretty())
	dmp := diffmatchpatch.New()
	patches := dmp.PatchMake(ta, tb)
	return dmp.PatchToText(patches), nil
}
