package token

import (
	"errors"
	"testing"
)

func TestUnquote(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
		err  error
	}{
		{in: `""`, want: ""},
		{in: `"hello"`, want: "hello"},
		{in: `"a\"b"`, want: `a"b`},
		{in: `"a\\b"`, want: `a\b`},
		{in: `"a\/b"`, want: "a/b"},
		{in: `"\b\f\n\r\t"`, want: "\b\f\n\r\t"},
		{in: `"A"`, want: "A"},
		{in: `"é"`, want: "é"},
		{in: `"☃"`, want: "☃"},
		{in: `"😀"`, want: "😀"},
		{in: `"\ud800"`, want: "�"},
		{in: `"\ud800x"`, want: "�x"},
		{in: `"héllo"`, want: "héllo"},
		{in: `"unterminated`, err: ErrUnterminated},
		{in: `"bad \q escape"`, err: ErrBadEscape},
		{in: `"\u00zz"`, err: ErrBadUnicode},
		{in: `"\u00"`, err: ErrBadUnicode},
		{in: "\"tab\there\"", err: ErrUnicodeControl},
		{in: "\"nl\nhere\"", err: ErrUnicodeControl},
		{in: "\"bad\xffutf8\"", err: ErrBadUTF8},
	} {
		got, err := Unquote(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("Unquote(%q): got error %v, want %v", tc.in, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unquote(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Unquote(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, v := range []string{
		"",
		"hello",
		`with "quotes" and \slashes\`,
		"controlchars",
		"tabs\tand\nnewlines",
		"héllo ☃ 😀",
	} {
		q := Quote(v)
		got, err := Unquote(q)
		if err != nil {
			t.Fatalf("Unquote(Quote(%q)) = %q: %v", v, q, err)
		}
		if got != v {
			t.Errorf("round trip %q -> %q -> %q", v, q, got)
		}
	}
}

func TestScanStringConsumed(t *testing.T) {
	s, n, err := ScanString([]byte(`"ab" : 1`))
	if err != nil {
		t.Fatal(err)
	}
	if s != "ab" || n != 4 {
		t.Errorf("got %q, %d", s, n)
	}
}
