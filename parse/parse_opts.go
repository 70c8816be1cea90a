package parse

// DefaultMaxDepth bounds container nesting so adversarial inputs
// cannot exhaust the goroutine stack.
const DefaultMaxDepth = 1000

type parseOpts struct {
	maxDepth  int
	rejectDup bool
}

type ParseOption func(*parseOpts)

// MaxDepth overrides the nesting depth limit. Values < 1 restore the
// default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// RejectDuplicateKeys makes a repeated object key a parse error. By
// default the last occurrence wins.
func RejectDuplicateKeys() ParseOption {
	return func(o *parseOpts) { o.rejectDup = true }
}
