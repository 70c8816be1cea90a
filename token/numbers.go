package token

import "strconv"

// ScanNumber reads a JSON number at d[0] and returns its value and the
// number of bytes consumed.
//
// The accepted grammar is RFC 8259 plus a bounded relaxation for forms
// the underlying float64 can represent anyway: an empty fraction after
// '.' ("2.", "0.e1"), a missing integer part after '-' ("-.5"), and
// leading zeros after '-' ("-012"). Positive leading zeros ("01"),
// NaN/Infinity spellings and signless fractions (".5") remain errors.
func ScanNumber(d []byte) (float64, int, error) {
	i := 0
	neg := false
	if i < len(d) && d[i] == '-' {
		neg = true
		i++
	}
	digits := asciiDigits(d[i:])
	if digits > 1 && d[i] == '0' && !neg {
		return 0, 0, ErrNumberLeadingZero
	}
	i += digits
	f := fract(d[i:])
	if digits == 0 {
		// "-.5" has no integer part; anything else needs one
		if !neg || f < 2 {
			return 0, 0, ErrNumber
		}
	}
	i += f
	i += exp(d[i:])
	v, err := strconv.ParseFloat(string(d[:i]), 64)
	if err != nil {
		return 0, 0, ErrNumber
	}
	return v, i, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// fract returns the length of a fraction at d, where the relaxed
// grammar permits '.' followed by zero digits.
func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	return 1 + asciiDigits(d[1:])
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}
