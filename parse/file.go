package parse

import (
	"fmt"
	"os"

	"github.com/jdom-format/go-jdom/ir"
)

// A FileError wraps a parse or read failure with the path of the file
// involved.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ParseFile reads and parses the document at path.
func ParseFile(path string, opts ...ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	res, err := Parse(d, opts...)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return res, nil
}
