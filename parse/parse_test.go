package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/token"
)

func TestParseScalars(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want *ir.Node
	}{
		{`null`, ir.Null()},
		{`true`, ir.FromBool(true)},
		{`false`, ir.FromBool(false)},
		{`0`, ir.FromFloat(0)},
		{`-17`, ir.FromFloat(-17)},
		{`2.5e2`, ir.FromFloat(250)},
		{`"hi\n"`, ir.FromString("hi\n")},
		{` 	 3 `, ir.FromFloat(3)},
	} {
		got, err := Parse([]byte(tc.in))
		if err != nil {
			t.Errorf("Parse(%q): %s", tc.in, err)
			continue
		}
		if !ir.Equal(got, tc.want) {
			t.Errorf("Parse(%q) = %v", tc.in, got)
		}
	}
}

func TestParseNested(t *testing.T) {
	d := []byte(`{
		"name": "doc",
		"tags": ["a", "b"],
		"meta": {"depth": 2, "ok": true, "none": null}
	}`)
	y, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	tags, err := y.At("tags")
	if err != nil {
		t.Fatal(err)
	}
	if tags.Len() != 2 {
		t.Fatalf("got %d tags", tags.Len())
	}
	meta, err := y.At("meta")
	if err != nil {
		t.Fatal(err)
	}
	depth, err := meta.FloatOr("depth", -1)
	if err != nil || depth != 2 {
		t.Fatalf("depth = %v, %v", depth, err)
	}
	if y.Fields[0] != "name" || y.Fields[1] != "tags" || y.Fields[2] != "meta" {
		t.Fatalf("entry order not kept: %v", y.Fields)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
	}{
		{``, ErrEmptyDoc},
		{`   `, ErrEmptyDoc},
		{`1 2`, ErrTrailing},
		{`{} []`, ErrTrailing},
		{`nul`, ErrParse},
		{`truex`, ErrParse},
		{`nullnull`, ErrParse},
		{`{`, ErrParse},
		{`{"a" 1}`, ErrParse},
		{`{"a": 1,}`, ErrParse},
		{`{'a': 1}`, ErrParse},
		{`{a: 1}`, ErrParse},
		{`[1, 2`, ErrParse},
		{`[1, 2,]`, ErrParse},
		{`[1 2]`, ErrParse},
		{`"abc`, ErrParse},
		{`01`, ErrParse},
		{`.5`, ErrParse},
		{`+1`, ErrParse},
		{`NaN`, ErrParse},
		{`Infinity`, ErrParse},
		{`// comment`, ErrParse},
		{`[1, "\q"]`, ErrParse},
		{"\"bad\xffutf8\"", token.ErrBadUTF8},
		{"[\"\xc3\"]", token.ErrBadUTF8},
	} {
		_, err := Parse([]byte(tc.in))
		if !errors.Is(err, tc.want) {
			t.Errorf("Parse(%q): got %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse([]byte("[1,\n 2,\n x]"))
	var pErr *ParseError
	if !errors.As(err, &pErr) {
		t.Fatalf("no ParseError in %v", err)
	}
	if pErr.Offset() != 9 {
		t.Errorf("offset = %d", pErr.Offset())
	}
	if pErr.Pos.Line() != 2 {
		t.Errorf("line = %d", pErr.Pos.Line())
	}
}

func TestDuplicateKeys(t *testing.T) {
	d := []byte(`{"a": 1, "b": 2, "a": 3}`)
	y, err := Parse(d)
	if err != nil {
		t.Fatal(err)
	}
	if y.Len() != 2 {
		t.Fatalf("len = %d", y.Len())
	}
	v, err := y.At("a")
	if err != nil || v.Float64 != 3 {
		t.Fatalf("a = %v, %v", v, err)
	}

	_, err = Parse(d, RejectDuplicateKeys())
	if !errors.Is(err, ErrDupKey) {
		t.Fatalf("got %v, want ErrDupKey", err)
	}
}

func TestMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 40) + strings.Repeat("]", 40)
	if _, err := Parse([]byte(deep), MaxDepth(40)); err != nil {
		t.Fatal(err)
	}
	_, err := Parse([]byte(deep), MaxDepth(39))
	if !errors.Is(err, ErrDepth) {
		t.Fatalf("got %v, want ErrDepth", err)
	}

	overDefault := strings.Repeat("[", DefaultMaxDepth+1) + strings.Repeat("]", DefaultMaxDepth+1)
	_, err = Parse([]byte(overDefault))
	if !errors.Is(err, ErrDepth) {
		t.Fatalf("got %v, want ErrDepth", err)
	}
}

func TestRelaxedNumbers(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
	}{
		{`2.`, 2},
		{`0.e1`, 0},
		{`2.e+3`, 2000},
		{`-.5`, -0.5},
		{`-012`, -12},
	} {
		y, err := Parse([]byte(tc.in))
		if err != nil {
			t.Errorf("Parse(%q): %s", tc.in, err)
			continue
		}
		if y.Float64 != tc.want {
			t.Errorf("Parse(%q) = %v", tc.in, y.Float64)
		}
	}
}

func TestLoneSurrogate(t *testing.T) {
	y, err := Parse([]byte(`"\ud800x"`))
	if err != nil {
		t.Fatal(err)
	}
	if y.String != "�x" {
		t.Fatalf("got %q", y.String)
	}
	y, err = Parse([]byte(`"😀"`))
	if err != nil {
		t.Fatal(err)
	}
	if y.String != "\U0001f600" {
		t.Fatalf("got %q", y.String)
	}
}
