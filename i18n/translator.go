// Package i18n renders diagnostic messages. Translators are immutable values;
// pick one per request with Match or New.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	govsn "github.com/reoring/govsn"
)

// Translator retrieves localized messages for diagnostic codes. data fills
// {placeholders} in the template (for example "field" or "got").
type Translator = govsn.Translator

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct {
	lang string
	dict map[string]string
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := t.dict[code]
	if !ok {
		tmpl, ok = catalog["en"][code]
		if !ok {
			return code
		}
	}
	return render(tmpl, data)
}

// Lang returns the translator's language tag.
func (t dictTranslator) Lang() string { return t.lang }

// Lang reports the language tag of a built-in Translator, or "" for other
// implementations.
func Lang(tr Translator) string {
	if l, ok := tr.(interface{ Lang() string }); ok {
		return l.Lang()
	}
	return ""
}

func render(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var supported = []language.Tag{language.English, language.Japanese, language.Chinese}

var matcher = language.NewMatcher(supported)

// Languages lists the built-in catalogues.
func Languages() []string { return []string{"en", "ja", "zh"} }

// New returns the built-in Translator for lang ("en", "ja", "zh"). Other
// values fall back to English.
func New(lang string) Translator {
	base := strings.ToLower(lang)
	if i := strings.IndexAny(base, "-_"); i > 0 {
		base = base[:i]
	}
	dict, ok := catalog[base]
	if !ok {
		base, dict = "en", catalog["en"]
	}
	return dictTranslator{lang: base, dict: dict}
}

// Default returns the English Translator.
func Default() Translator { return New("en") }

// Match picks the best built-in Translator for an Accept-Language header.
func Match(acceptLanguage string) Translator {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, _ := matcher.Match(tags...)
	base, _ := supported[idx].Base()
	return New(base.String())
}

// T fetches an English message for code.
func T(code string, data map[string]string) string { return Default().Message(code, data) }
