package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	govsn "github.com/reoring/govsn"
	"github.com/reoring/govsn/i18n"
)

func TestNew_RendersPlaceholders(t *testing.T) {
	msg := i18n.New("en").Message(govsn.CodeRequiredFieldMissing, map[string]string{"field": "pages"})
	assert.Equal(t, "pages is required", msg)
}

func TestNew_FallsBackToEnglish(t *testing.T) {
	assert.Equal(t,
		i18n.New("en").Message(govsn.CodeMissingLogFontHeight, nil),
		i18n.New("fr").Message(govsn.CodeMissingLogFontHeight, nil))
	assert.Equal(t, "SOMETHING_NEW", i18n.New("ja").Message("SOMETHING_NEW", nil))
}

func TestNew_RegionSubtag(t *testing.T) {
	msg := i18n.New("zh-CN").Message(govsn.CodeRequiredFieldMissing, map[string]string{"field": "x"})
	assert.Equal(t, "x 为必填项", msg)
}

func TestMatch_AcceptLanguage(t *testing.T) {
	ja := i18n.Match("ja-JP,ja;q=0.9,en;q=0.8")
	assert.Equal(t, "x は必須です", ja.Message(govsn.CodeRequiredFieldMissing, map[string]string{"field": "x"}))
	en := i18n.Match("de-DE")
	assert.Equal(t, "x is required", en.Message(govsn.CodeRequiredFieldMissing, map[string]string{"field": "x"}))
	assert.Equal(t, "x is required", i18n.Match("").Message(govsn.CodeRequiredFieldMissing, map[string]string{"field": "x"}))
}

func TestT(t *testing.T) {
	assert.Equal(t, "conversion failed: boom", i18n.T(govsn.CodeConversionError, map[string]string{"cause": "boom"}))
}

type fixed struct{}

func (fixed) Message(code string, _ map[string]string) string { return code }

func TestLang(t *testing.T) {
	assert.Equal(t, "ja", i18n.Lang(i18n.Match("ja-JP")))
	assert.Equal(t, "zh", i18n.Lang(i18n.New("zh-TW")))
	assert.Equal(t, "en", i18n.Lang(i18n.New("fr")))
	assert.Empty(t, i18n.Lang(fixed{}))
}
