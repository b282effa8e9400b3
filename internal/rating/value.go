package rating

import (
	"strconv"
	"strings"
	"unicode"
)

// Value is the widget's selected rating. It may be not-a-number when the
// element content it was parsed from held no leading integer; such a value
// compares unequal to every icon index.
type Value struct {
	n     int
	valid bool
}

// IntValue wraps n as a rating value.
func IntValue(n int) Value {
	return Value{n: n, valid: true}
}

// NaN returns the not-a-number value.
func NaN() Value {
	return Value{}
}

// ParseValue reads a base-10 integer prefix from s: leading whitespace is
// skipped, an optional sign is accepted and parsing stops at the first
// non-digit. Content without a digit prefix, or one that overflows int,
// yields NaN.
func ParseValue(s string) Value {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return NaN()
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return NaN()
	}
	return IntValue(n)
}

// Int returns the integer and whether the value is a number.
func (v Value) Int() (int, bool) {
	return v.n, v.valid
}

// IsNaN reports whether v is the not-a-number value.
func (v Value) IsNaN() bool {
	return !v.valid
}

// Equals reports whether v is a number equal to n.
func (v Value) Equals(n int) bool {
	return v.valid && v.n == n
}

// Covers reports whether the icon at the 1-based position index is filled for v.
func (v Value) Covers(index int) bool {
	return v.valid && index <= v.n
}

// String returns the numeral written back to the element on destroy.
func (v Value) String() string {
	if !v.valid {
		return "NaN"
	}
	return strconv.Itoa(v.n)
}

// MarshalJSON encodes a number as a JSON number and NaN as the string "NaN".
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte(`"NaN"`), nil
	}
	return []byte(strconv.Itoa(v.n)), nil
}
