package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/rules"
)

var at = govsn.Root().Field("pages").Index(0).Field("appointDuration")

func codes(ds []govsn.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}
	return out
}

func TestCheck_RequiredStopsChain(t *testing.T) {
	ds := rules.Check(at, "", rules.Required(), rules.Integer(0, 10))
	require.Len(t, ds, 1)
	assert.Equal(t, govsn.CodeRequiredFieldMissing, ds[0].Code)
	assert.Equal(t, "pages[0].appointDuration", ds[0].Field)
	assert.Equal(t, govsn.LevelError, ds[0].Level)
}

func TestInteger(t *testing.T) {
	r := rules.Integer(1, 65535)
	assert.Empty(t, r(at, "1920"))
	assert.Empty(t, r(at, ""))
	assert.Equal(t, []string{govsn.CodeInvalidNumberFormat}, codes(r(at, "19.5")))
	assert.Equal(t, []string{govsn.CodeInvalidNumberFormat}, codes(r(at, " 1")))
	assert.Equal(t, []string{govsn.CodeInvalidNumberFormat}, codes(r(at, "+1920")))
	assert.Equal(t, []string{govsn.CodeValueOutOfRange}, codes(r(at, "0")))
	ds := r(at, "70000")
	require.Len(t, ds, 1)
	assert.Equal(t, "[1, 65535]", ds[0].Params["range"])
	assert.Equal(t, ">= 0", rules.Integer(0, rules.NoMax)(at, "-1")[0].Params["range"])
}

func TestNumber(t *testing.T) {
	r := rules.Number(0, 1)
	assert.Empty(t, r(at, "0.5"))
	assert.Equal(t, []string{govsn.CodeValueOutOfRange}, codes(r(at, "1.5")))
	assert.Equal(t, []string{govsn.CodeInvalidNumberFormat}, codes(r(at, "NaN")))
	assert.Equal(t, []string{govsn.CodeInvalidNumberFormat}, codes(r(at, "+0.5")))
	assert.Equal(t, []string{govsn.CodeInvalidNumberFormat}, codes(r(at, "5e-1")))
}

func TestColor(t *testing.T) {
	assert.Empty(t, rules.Color()(at, "4294967295"))
	assert.Equal(t, []string{govsn.CodeInvalidColorFormat}, codes(rules.Color()(at, "#FFFFFF")))
	assert.Equal(t, []string{govsn.CodeInvalidColorFormat}, codes(rules.Color()(at, "4294967296")))
	assert.Equal(t, []string{govsn.CodeInvalidColorFormat}, codes(rules.Color()(at, "+4278190080")))
}

func TestFlagAndOneOf(t *testing.T) {
	assert.Empty(t, rules.Flag()(at, "1"))
	ds := rules.Flag()(at, "true")
	require.Len(t, ds, 1)
	assert.Equal(t, govsn.CodeInvalidDataType, ds[0].Code)
	assert.Equal(t, "0, 1", ds[0].Params["allowed"])
}

func TestAdvisories(t *testing.T) {
	assert.Empty(t, rules.HTTPURL()(at, "https://example.com"))
	ds := rules.HTTPURL()(at, "rtsp://cam/1")
	require.Len(t, ds, 1)
	assert.Equal(t, govsn.LevelWarning, ds[0].Level)

	assert.Empty(t, rules.FilePath()(at, "media/a.png"))
	assert.Equal(t, []string{govsn.CodeSuspiciousFilePath}, codes(rules.FilePath()(at, `media\a.png`)))
	assert.Equal(t, []string{govsn.CodeSuspiciousFilePath}, codes(rules.FilePath()(at, "../a.png")))
}

func TestCheck_WarningDoesNotStopChain(t *testing.T) {
	ds := rules.Check(at, "ftp://x", rules.HTTPURL(), rules.Required())
	assert.Equal(t, []string{govsn.CodeNonHTTPURL}, codes(ds))
}

func TestIf(t *testing.T) {
	assert.Empty(t, rules.If(false, rules.Required())(at, ""))
	assert.Len(t, rules.If(true, rules.Required())(at, ""), 1)
}

func TestDimension(t *testing.T) {
	assert.Empty(t, rules.Dimension()(at, "1"))
	assert.Equal(t, []string{govsn.CodeInvalidRectDimensions}, codes(rules.Dimension()(at, "0")))
	assert.Equal(t, []string{govsn.CodeInvalidRectDimensions}, codes(rules.Dimension()(at, "-4")))
	assert.Equal(t, []string{govsn.CodeInvalidNumberFormat}, codes(rules.Dimension()(at, "wide")))
	assert.Equal(t, []string{govsn.CodeInvalidNumberFormat}, codes(rules.Dimension()(at, "+1080")))
}
