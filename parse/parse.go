// Package parse provides JSON parsing support.
package parse

import (
	"fmt"

	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/token"
)

// Parse reads a complete JSON document from d. The input must contain
// exactly one value; leading and trailing whitespace is allowed,
// anything else after the value is ErrTrailing.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		d:    d,
		doc:  token.NewPosDoc(d),
		opts: pOpts,
	}
	p.skipSpace()
	if p.i == len(p.d) {
		return nil, p.errAt(p.i, ErrEmptyDoc)
	}
	res, err := p.value(nil)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.i != len(p.d) {
		return nil, p.errAt(p.i, ErrTrailing)
	}
	return res, nil
}

type parser struct {
	d     []byte
	i     int
	doc   *token.PosDoc
	opts  *parseOpts
	depth int
}

func (p *parser) errAt(off int, err error) error {
	return &ParseError{Pos: p.doc.Pos(off), Err: err}
}

func (p *parser) skipSpace() {
	for p.i < len(p.d) {
		switch p.d[p.i] {
		case ' ', '\t', '\n', '\r':
			p.i++
		default:
			return
		}
	}
}

func (p *parser) value(parent *ir.Node) (*ir.Node, error) {
	if p.i >= len(p.d) {
		return nil, p.errAt(p.i, fmt.Errorf("%w: unexpected end of input", ErrParse))
	}
	c := p.d[p.i]
	switch {
	case c == '{':
		return p.object(parent)
	case c == '[':
		return p.array(parent)
	case c == '"':
		start := p.i
		s, n, err := token.ScanString(p.d[p.i:])
		if err != nil {
			return nil, p.errAt(start+n, fmt.Errorf("%w: %w", ErrParse, err))
		}
		p.i += n
		res := ir.FromString(s)
		res.Parent = parent
		return res, nil
	case c == '-' || c >= '0' && c <= '9':
		start := p.i
		f, n, err := token.ScanNumber(p.d[p.i:])
		if err != nil {
			return nil, p.errAt(start, fmt.Errorf("%w: %w", ErrParse, err))
		}
		p.i += n
		res := ir.FromFloat(f)
		res.Parent = parent
		return res, nil
	case c == 't':
		if err := p.keyword("true"); err != nil {
			return nil, err
		}
		res := ir.FromBool(true)
		res.Parent = parent
		return res, nil
	case c == 'f':
		if err := p.keyword("false"); err != nil {
			return nil, err
		}
		res := ir.FromBool(false)
		res.Parent = parent
		return res, nil
	case c == 'n':
		if err := p.keyword("null"); err != nil {
			return nil, err
		}
		res := ir.Null()
		res.Parent = parent
		return res, nil
	default:
		return nil, p.errAt(p.i, fmt.Errorf("%w: unexpected character %q", ErrParse, c))
	}
}

// keyword matches one of the literal names. The byte after the name
// must be a delimiter, so "truex" does not parse as true.
func (p *parser) keyword(kw string) error {
	if len(p.d)-p.i < len(kw) || string(p.d[p.i:p.i+len(kw)]) != kw {
		return p.errAt(p.i, fmt.Errorf("%w: invalid literal", ErrParse))
	}
	if j := p.i + len(kw); j < len(p.d) && !delimiter(p.d[j]) {
		return p.errAt(p.i, fmt.Errorf("%w: invalid literal", ErrParse))
	}
	p.i += len(kw)
	return nil
}

func delimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ',', ']', '}', ':':
		return true
	}
	return false
}

func (p *parser) push() error {
	p.depth++
	if p.depth > p.opts.maxDepth {
		return p.errAt(p.i, ErrDepth)
	}
	return nil
}

func (p *parser) object(parent *ir.Node) (*ir.Node, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	res := &ir.Node{Type: ir.ObjectType, Parent: parent}
	p.i++ // '{'
	p.skipSpace()
	if p.i < len(p.d) && p.d[p.i] == '}' {
		p.i++
		return res, nil
	}
	for {
		p.skipSpace()
		if p.i >= len(p.d) || p.d[p.i] != '"' {
			return nil, p.errAt(p.i, fmt.Errorf("%w: expected object key", ErrParse))
		}
		keyOff := p.i
		key, n, err := token.ScanString(p.d[p.i:])
		if err != nil {
			return nil, p.errAt(keyOff+n, fmt.Errorf("%w: %w", ErrParse, err))
		}
		p.i += n
		p.skipSpace()
		if p.i >= len(p.d) || p.d[p.i] != ':' {
			return nil, p.errAt(p.i, fmt.Errorf("%w: expected ':' after object key", ErrParse))
		}
		p.i++
		p.skipSpace()
		val, err := p.value(res)
		if err != nil {
			return nil, err
		}
		if p.opts.rejectDup && res.Contains(key) {
			return nil, p.errAt(keyOff, fmt.Errorf("%w: %q", ErrDupKey, key))
		}
		// Set resolves repeats with last occurrence winning
		if err := res.Set(key, val); err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.i >= len(p.d) {
			return nil, p.errAt(p.i, fmt.Errorf("%w: unterminated object", ErrParse))
		}
		switch p.d[p.i] {
		case ',':
			p.i++
		case '}':
			p.i++
			return res, nil
		default:
			return nil, p.errAt(p.i, fmt.Errorf("%w: expected ',' or '}'", ErrParse))
		}
	}
}

func (p *parser) array(parent *ir.Node) (*ir.Node, error) {
	if err := p.push(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()
	res := &ir.Node{Type: ir.ArrayType, Parent: parent}
	p.i++ // '['
	p.skipSpace()
	if p.i < len(p.d) && p.d[p.i] == ']' {
		p.i++
		return res, nil
	}
	for {
		p.skipSpace()
		elt, err := p.value(res)
		if err != nil {
			return nil, err
		}
		if err := res.Append(elt); err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.i >= len(p.d) {
			return nil, p.errAt(p.i, fmt.Errorf("%w: unterminated array", ErrParse))
		}
		switch p.d[p.i] {
		case ',':
			p.i++
		case ']':
			p.i++
			return res, nil
		default:
			return nil, p.errAt(p.i, fmt.Errorf("%w: expected ',' or ']'", ErrParse))
		}
	}
}
