// Package rules holds the scalar checks the validation engine applies to wire
// fields. A Rule looks at one string value and reports diagnostics at the
// given path; empty values are treated as absent and only Required flags them.
package rules

import (
	"math"
	"strconv"
	"strings"

	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/codec"
)

// Rule checks a single wire scalar.
type Rule func(p govsn.Path, v string) []govsn.Diagnostic

// NoMax disables the upper bound of Integer.
const NoMax = math.MaxInt64

// Check runs rs in order and stops after the first rule that reports an
// error, so a missing field is not also reported as malformed.
func Check(p govsn.Path, v string, rs ...Rule) []govsn.Diagnostic {
	var out []govsn.Diagnostic
	for _, r := range rs {
		if r == nil {
			continue
		}
		ds := r(p, v)
		out = append(out, ds...)
		if hasError(ds) {
			return out
		}
	}
	return out
}

func hasError(ds []govsn.Diagnostic) bool {
	for _, d := range ds {
		if d.Level == govsn.LevelError {
			return true
		}
	}
	return false
}

// Required reports REQUIRED_FIELD_MISSING for an empty value.
func Required() Rule {
	return func(p govsn.Path, v string) []govsn.Diagnostic {
		if v == "" {
			return []govsn.Diagnostic{p.Error(govsn.CodeRequiredFieldMissing)}
		}
		return nil
	}
}

// Integer requires a canonical decimal integer within [lo, hi].
func Integer(lo, hi int64) Rule {
	return func(p govsn.Path, v string) []govsn.Diagnostic {
		if v == "" {
			return nil
		}
		n, err := codec.ParseWireInt(v)
		if err != nil {
			return []govsn.Diagnostic{p.Error(govsn.CodeInvalidNumberFormat, "got", v)}
		}
		if n < lo || n > hi {
			return []govsn.Diagnostic{p.Error(govsn.CodeValueOutOfRange, "got", v, "range", intRange(lo, hi),
				"min", strconv.FormatInt(lo, 10))}
		}
		return nil
	}
}

// Number requires a finite decimal within [lo, hi].
func Number(lo, hi float64) Rule {
	return func(p govsn.Path, v string) []govsn.Diagnostic {
		if v == "" {
			return nil
		}
		f, err := codec.ParseWireDecimal(v)
		if err != nil {
			return []govsn.Diagnostic{p.Error(govsn.CodeInvalidNumberFormat, "got", v)}
		}
		if f < lo || f > hi {
			return []govsn.Diagnostic{p.Error(govsn.CodeValueOutOfRange, "got", v,
				"range", "["+codec.NumberToWireString(lo)+", "+codec.NumberToWireString(hi)+"]")}
		}
		return nil
	}
}

func intRange(lo, hi int64) string {
	if hi == NoMax {
		return ">= " + strconv.FormatInt(lo, 10)
	}
	return "[" + strconv.FormatInt(lo, 10) + ", " + strconv.FormatInt(hi, 10) + "]"
}

// Color requires a packed ARGB decimal in [0, 2^32-1].
func Color() Rule {
	return func(p govsn.Path, v string) []govsn.Diagnostic {
		if v == "" {
			return nil
		}
		if _, err := codec.ParseWireColor(v); err != nil {
			return []govsn.Diagnostic{p.Error(govsn.CodeInvalidColorFormat, "got", v)}
		}
		return nil
	}
}

// OneOf requires v to be one of allowed.
func OneOf(allowed ...string) Rule {
	return func(p govsn.Path, v string) []govsn.Diagnostic {
		if v == "" {
			return nil
		}
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return []govsn.Diagnostic{p.Error(govsn.CodeInvalidDataType, "got", v, "allowed", strings.Join(allowed, ", "))}
	}
}

// Flag requires "0" or "1".
func Flag() Rule { return OneOf("0", "1") }

// HTTPURL warns when a URL does not use http or https.
func HTTPURL() Rule {
	return func(p govsn.Path, v string) []govsn.Diagnostic {
		if v == "" || strings.HasPrefix(strings.ToLower(v), "http") {
			return nil
		}
		return []govsn.Diagnostic{p.Warning(govsn.CodeNonHTTPURL, "got", v)}
	}
}

// FilePath warns about Windows separators and parent-directory segments,
// which players resolve inconsistently.
func FilePath() Rule {
	return func(p govsn.Path, v string) []govsn.Diagnostic {
		if v == "" {
			return nil
		}
		suspicious := strings.Contains(v, `\`)
		for _, seg := range strings.Split(v, "/") {
			if seg == ".." {
				suspicious = true
			}
		}
		if suspicious {
			return []govsn.Diagnostic{p.Warning(govsn.CodeSuspiciousFilePath, "got", v)}
		}
		return nil
	}
}

// If runs rs only when cond holds.
func If(cond bool, rs ...Rule) Rule {
	return func(p govsn.Path, v string) []govsn.Diagnostic {
		if !cond {
			return nil
		}
		return Check(p, v, rs...)
	}
}

// Dimension requires an integer width or height of at least one pixel.
func Dimension() Rule {
	return func(p govsn.Path, v string) []govsn.Diagnostic {
		if v == "" {
			return nil
		}
		n, err := codec.ParseWireInt(v)
		if err != nil {
			return []govsn.Diagnostic{p.Error(govsn.CodeInvalidNumberFormat, "got", v)}
		}
		if n < 1 {
			return []govsn.Diagnostic{p.Error(govsn.CodeInvalidRectDimensions, "got", v)}
		}
		return nil
	}
}
