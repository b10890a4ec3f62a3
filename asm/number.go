package asm

import (
	"strconv"
	"strings"
)

// basePrefix maps integer literal prefixes to their base.
var basePrefix = map[string]int{
	"0b": 2,
	"0o": 8,
	"0x": 16,
}

// digitValue returns the value of an upper-case digit, or 16 if the rune
// is not a digit in any base.
func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return 16
}

// ParseInteger converts an integer literal. The literal is an optional
// '-', an optional 0b, 0o or 0x prefix, then one or more digits of the
// base. Hexadecimal digits are upper-case only.
func ParseInteger(word string) (value int64, ok bool) {
	digits, neg := strings.CutPrefix(word, "-")

	base := 10
	if len(digits) > 2 {
		prefixed, has := basePrefix[digits[:2]]
		if has {
			base = prefixed
			digits = digits[2:]
		}
	}

	if len(digits) == 0 {
		return
	}

	for _, r := range digits {
		if digitValue(r) >= base {
			return
		}
	}

	if neg {
		digits = "-" + digits
	}

	value, err := strconv.ParseInt(digits, base, 64)
	ok = err == nil

	return
}

// FormatInteger formats a value as an integer literal of the base, which
// must be 2, 8, 10 or 16.
func FormatInteger(value int64, base int) string {
	var prefix string
	for text, prefixBase := range basePrefix {
		if prefixBase == base {
			prefix = text
		}
	}

	var sign string
	magnitude := strconv.FormatUint(uint64(value), base)
	if value < 0 {
		sign = "-"
		magnitude = strconv.FormatUint(-uint64(value), base)
	}

	return sign + prefix + strings.ToUpper(magnitude)
}
