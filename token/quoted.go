package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// ScanString decodes a double-quoted JSON string starting at d[0],
// which must be '"'. It returns the decoded value and the number of
// bytes consumed, including both quotes.
func ScanString(d []byte) (string, int, error) {
	if len(d) == 0 || d[0] != '"' {
		return "", 0, ErrUnterminated
	}
	b := &strings.Builder{}
	i := 1
	for i < len(d) {
		c := d[i]
		if c == '"' {
			return b.String(), i + 1, nil
		}
		if c == '\\' {
			n, err := scanEscape(d[i:], b)
			if err != nil {
				return "", i, err
			}
			i += n
			continue
		}
		if c < 0x20 {
			return "", i, ErrUnicodeControl
		}
		r, sz := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && sz == 1 {
			return "", i, ErrBadUTF8
		}
		b.WriteRune(r)
		i += sz
	}
	return "", len(d), ErrUnterminated
}

// scanEscape decodes one backslash escape at d[0] and returns the
// bytes consumed. Surrogate pairs consume both \uXXXX sequences; a
// lone surrogate decodes to U+FFFD.
func scanEscape(d []byte, b *strings.Builder) (int, error) {
	if len(d) < 2 {
		return 0, ErrUnterminated
	}
	switch d[1] {
	case '"':
		b.WriteByte('"')
	case '\\':
		b.WriteByte('\\')
	case '/':
		b.WriteByte('/')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		r1, err := hex4(d[2:])
		if err != nil {
			return 0, err
		}
		if !utf16.IsSurrogate(r1) {
			b.WriteRune(r1)
			return 6, nil
		}
		if len(d) >= 12 && d[6] == '\\' && d[7] == 'u' {
			r2, err := hex4(d[8:])
			if err != nil {
				return 0, err
			}
			if r := utf16.DecodeRune(r1, r2); r != utf8.RuneError {
				b.WriteRune(r)
				return 12, nil
			}
		}
		b.WriteRune(utf8.RuneError)
		return 6, nil
	default:
		return 0, ErrBadEscape
	}
	return 2, nil
}

func hex4(d []byte) (rune, error) {
	if len(d) < 4 {
		return 0, ErrBadUnicode
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, d[:4]); err != nil {
		return 0, ErrBadUnicode
	}
	return rune(dst[0])<<8 | rune(dst[1]), nil
}

// Unquote decodes a complete double-quoted string; trailing bytes are
// an error.
func Unquote(v string) (string, error) {
	s, n, err := ScanString([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return s, nil
}

// Quote renders v as a double-quoted JSON string, escaping the
// characters RFC 8259 requires escaped. Non-control characters outside
// ASCII are written as raw UTF-8.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 || unicode.IsControl(r) && r < 0x100 {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}
