package codec

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNonCanonicalNumber reports a wire number that is not written as plain
// decimal digits with an optional leading '-'.
var ErrNonCanonicalNumber = errors.New("codec: non-canonical wire number")

var decimalRE = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// ParseWireInt strictly parses a wire integer such as "1920" or "-5". A
// leading '+' is rejected.
func ParseWireInt(s string) (int64, error) {
	if s == "" || s[0] == '+' {
		return 0, fmt.Errorf("%w: %q", ErrNonCanonicalNumber, s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonCanonicalNumber, s)
	}
	return n, nil
}

// ParseWireDecimal strictly parses a wire decimal such as "0.5" or "-3".
// Signs other than '-', exponents and special values are rejected.
func ParseWireDecimal(s string) (float64, error) {
	if !decimalRE.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrNonCanonicalNumber, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNonCanonicalNumber, s)
	}
	return f, nil
}

// NumberToWireString renders n in its shortest decimal form ("1", "0.5").
func NumberToWireString(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// IntToWireString renders an integer.
func IntToWireString(n int) string { return strconv.Itoa(n) }

// WireStringToNumber parses a wire number. Empty or unparseable input decodes
// to 0 instead of failing: devices emit loosely formatted numbers and import
// must not reject them.
func WireStringToNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// WireStringToInt is WireStringToNumber truncated toward zero.
func WireStringToInt(s string) int { return int(WireStringToNumber(s)) }

// BoolToWireFlag encodes a boolean as "1" or "0".
func BoolToWireFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// WireFlagToBool decodes a flag; only "1" is true.
func WireFlagToBool(s string) bool { return s == "1" }
