package encode

import (
	"bytes"

	"github.com/jdom-format/go-jdom/ir"
)

// MustString renders node, panicking on encode failure. Writes to a
// bytes.Buffer cannot fail, so for in-memory use the only panic is a
// tree that cannot be encoded, such as a non-finite number.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
