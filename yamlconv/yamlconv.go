// Package yamlconv converts between YAML text and IR nodes.
//
// YAML is decoded to generic Go values first and then lifted into the
// IR, so only the JSON-compatible subset of YAML survives the trip:
// anchors are expanded, non-string keys are rejected and custom tags
// are lost.
package yamlconv

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/jdom-format/go-jdom/ir"
)

// FromYAML parses YAML text into an IR node.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	v = stringKeys(v)
	return ir.FromAny(v)
}

// ToYAML renders an IR node as YAML text.
func ToYAML(node *ir.Node) ([]byte, error) {
	d, err := yaml.Marshal(ir.ToAny(node))
	if err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return d, nil
}

// stringKeys rewrites map[any]any containers, which some YAML inputs
// produce, into map[string]any. Non-string keys are left for FromAny
// to reject.
func stringKeys(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = stringKeys(e)
		}
		return x
	case map[any]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return v
			}
			res[ks] = stringKeys(e)
		}
		return res
	case []any:
		for i, e := range x {
			x[i] = stringKeys(e)
		}
		return x
	default:
		return v
	}
}
