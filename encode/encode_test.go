package encode

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/jdom-format/go-jdom/ir"
	"github.com/jdom-format/go-jdom/parse"
)

func TestMinimized(t *testing.T) {
	for _, tc := range []struct {
		node *ir.Node
		want string
	}{
		{ir.Null(), `null`},
		{ir.FromBool(true), `true`},
		{ir.FromFloat(-17), `-17`},
		{ir.FromFloat(2.5), `2.5`},
		{ir.FromString("a\"b\n"), `"a\"b\n"`},
		{ir.FromSlice(nil), `[]`},
		{ir.FromKeyVals(nil), `{}`},
		{
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "b", Val: ir.FromInt(1)},
				{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.Null()})},
			}),
			`{"b":1,"a":[null]}`,
		},
	} {
		if got := MustString(tc.node); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestMinimized3DArray(t *testing.T) {
	doc := `{"array_3D": [[[1,2],[3,4]],[[5,6],[7,8,9]]]}`
	node, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	arr, err := node.At("array_3D")
	if err != nil {
		t.Fatal(err)
	}
	want := `[[[1,2],[3,4]],[[5,6],[7,8,9]]]`
	if got := MustString(arr); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPretty(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("doc")},
		{Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})},
		{Key: "empty", Val: ir.FromKeyVals(nil)},
	})
	want := `{
  "name": "doc",
  "tags": [
    1,
    2
  ],
  "empty": {}
}`
	if got := MustString(node, Pretty()); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyIndent(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	want := "{\n    \"a\": 1\n}"
	if got := MustString(node, Pretty(), Indent(4)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNumberForms(t *testing.T) {
	for _, tc := range []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{17, "17"},
		{-2.5, "-2.5"},
		{1e21, "1e+21"},
		{0.0001, "0.0001"},
	} {
		if got := MustString(ir.FromFloat(tc.v)); got != tc.want {
			t.Errorf("%v: got %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestNonFiniteNumbers(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := Encode(ir.FromFloat(v), bytes.NewBuffer(nil))
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%v: got %v, want ErrEncoding", v, err)
		}
		err = Encode(ir.FromSlice([]*ir.Node{ir.FromFloat(v)}), bytes.NewBuffer(nil))
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("[%v]: got %v, want ErrEncoding", v, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{"a":1,"b":[true,null,"x"],"c":{"d":2.5}}`,
		`[[],{},"",0]`,
		`"\u0001\u001f high é"`,
	}
	for _, d := range docs {
		y, err := parse.Parse([]byte(d))
		if err != nil {
			t.Fatalf("%s: %s", d, err)
		}
		y2, err := parse.Parse([]byte(MustString(y)))
		if err != nil {
			t.Fatalf("reparse %s: %s", d, err)
		}
		if !ir.Equal(y, y2) {
			t.Errorf("%s: round trip changed value", d)
		}
	}
}
