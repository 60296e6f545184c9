package govsn

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes. These are a stable contract with the authoring UI and must
// not be renamed.
const (
	// Required-field and type/format rules.
	CodeRequiredFieldMissing = "REQUIRED_FIELD_MISSING"
	CodeInvalidNumberFormat  = "INVALID_NUMBER_FORMAT"
	CodeValueOutOfRange      = "VALUE_OUT_OF_RANGE"
	CodeInvalidColorFormat   = "INVALID_COLOR_FORMAT"
	CodeInvalidDataType      = "INVALID_DATA_TYPE"
	// Cross-field business rules.
	CodeInvalidLoopTypeDuration   = "INVALID_LOOP_TYPE_DURATION"
	CodeMissingLogFontHeight      = "MISSING_LOGFONT_HEIGHT"
	CodeInvalidSyncRegionItemType = "INVALID_SYNC_REGION_ITEM_TYPE"
	CodeInvalidRectDimensions     = "INVALID_RECT_DIMENSIONS"
	// Advisories (warning level).
	CodeUnknownItemType    = "UNKNOWN_ITEM_TYPE"
	CodeNonHTTPURL         = "NON_HTTP_URL"
	CodeSuspiciousFilePath = "SUSPICIOUS_FILE_PATH"
	CodeRegionOutOfBounds  = "REGION_OUT_OF_BOUNDS"
	CodeDuplicateKey       = "DUPLICATE_KEY"
	// Synthetic error produced when forward conversion aborts.
	CodeConversionError = "CONVERSION_ERROR"
)

// Level is the severity of a Diagnostic.
type Level string

const (
	LevelError   Level = "error"   // Blocks export.
	LevelWarning Level = "warning" // Advisory only.
)

// Diagnostic is a single path-tagged validation finding.
type Diagnostic struct {
	Field   string `json:"field" yaml:"field"`     // Dotted path, e.g. pages[0].regions[1].rect.x
	Message string `json:"message" yaml:"message"` // Human-readable, localised.
	Code    string `json:"code" yaml:"code"`
	Level   Level  `json:"level" yaml:"level"`
	// Params carries structured values (min, max, got, ...) used to render
	// Message.
	Params map[string]string `json:"-" yaml:"-"`
}

// Diagnostics is a list of findings that implements error.
type Diagnostics []Diagnostic

// Error summarizes the first few diagnostics.
func (ds Diagnostics) Error() string {
	if len(ds) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(ds), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", ds[i].Code, ds[i].Field)
	}
	if len(ds) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(ds))
	}
	return b.String()
}

// AsDiagnostics extracts Diagnostics from an error using errors.As.
func AsDiagnostics(err error) (Diagnostics, bool) {
	if err == nil {
		return nil, false
	}
	var ds Diagnostics
	if errors.As(err, &ds) {
		return ds, true
	}
	return nil, false
}

// Translator renders a diagnostic message from its code and parameters.
type Translator interface {
	Message(code string, data map[string]string) string
}

// Result is the outcome of validating a wire document.
type Result struct {
	IsValid  bool         `json:"isValid" yaml:"isValid"`
	Errors   []Diagnostic `json:"errors" yaml:"errors"`
	Warnings []Diagnostic `json:"warnings" yaml:"warnings"`
}

// NewResult partitions diagnostics by level. Errors and Warnings are never nil
// so they serialise as empty arrays.
func NewResult(diags ...Diagnostic) Result {
	r := Result{Errors: []Diagnostic{}, Warnings: []Diagnostic{}}
	return r.Merge(diags...)
}

// Merge returns a copy of r with more diagnostics appended.
func (r Result) Merge(more ...Diagnostic) Result {
	out := Result{
		Errors:   append(make([]Diagnostic, 0, len(r.Errors)), r.Errors...),
		Warnings: append(make([]Diagnostic, 0, len(r.Warnings)), r.Warnings...),
	}
	for _, d := range more {
		if d.Level == LevelWarning {
			out.Warnings = append(out.Warnings, d)
		} else {
			out.Errors = append(out.Errors, d)
		}
	}
	out.IsValid = len(out.Errors) == 0
	return out
}

// Localize fills in every message using tr.
func (r Result) Localize(tr Translator) Result {
	if tr == nil {
		return r
	}
	loc := func(in []Diagnostic) []Diagnostic {
		out := make([]Diagnostic, len(in))
		for i, d := range in {
			d.Message = tr.Message(d.Code, d.Params)
			out[i] = d
		}
		return out
	}
	return Result{IsValid: r.IsValid, Errors: loc(r.Errors), Warnings: loc(r.Warnings)}
}

// Count returns how many diagnostics (of either level) carry code.
func (r Result) Count(code string) int {
	n := 0
	for _, d := range r.Errors {
		if d.Code == code {
			n++
		}
	}
	for _, d := range r.Warnings {
		if d.Code == code {
			n++
		}
	}
	return n
}

// Find returns the first diagnostic with code at field.
func (r Result) Find(code, field string) (Diagnostic, bool) {
	for _, d := range append(append([]Diagnostic{}, r.Errors...), r.Warnings...) {
		if d.Code == code && d.Field == field {
			return d, true
		}
	}
	return Diagnostic{}, false
}

// Err returns the blocking diagnostics as an error, or nil when valid.
func (r Result) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return Diagnostics(r.Errors)
}

// ErrUnsupportedItemType reports an item whose type code is outside the closed
// tag set. Forward conversion returns it to the caller instead of folding it
// into the validation result.
var ErrUnsupportedItemType = errors.New("govsn: unsupported item type")

// ErrConversion matches every *ConversionError via errors.Is.
var ErrConversion = errors.New("govsn: conversion failed")

// ConversionError records where in a document a conversion failed.
type ConversionError struct {
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("govsn: convert: %v", e.Err)
	}
	return fmt.Sprintf("govsn: convert %s: %v", e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Is reports true for ErrConversion so callers can branch without errors.As.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// Errorf wraps a formatted cause in a ConversionError at p.
func Errorf(p Path, format string, args ...any) error {
	return &ConversionError{Path: p.String(), Err: fmt.Errorf(format, args...)}
}
