package debug

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Diff  bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JD_DEBUG_PARSE")
	d.Diff = boolEnv("JD_DEBUG_DIFF")
	d.Patch = boolEnv("JD_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}

// Stringer values render via their String method; raw byte slices are
// shown as text.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case []byte:
			args[i] = string(bytes.ToValidUTF8(x, []byte("?")))
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
