// SPDX-License-Identifier: MIT

// Package i18n negotiates the display language for the trilingual dataset
// fields. Every dataset carries English, French and Spanish variants; the
// negotiated language picks the variant, falling back to English when a
// localized field is empty.
package i18n

import (
	"golang.org/x/text/language"
)

// Lang is a supported display language.
type Lang string

const (
	English Lang = "en"
	French  Lang = "fr"
	Spanish Lang = "es"
)

// DefaultLang is used when negotiation fails outright.
const DefaultLang = French

var matcher = language.NewMatcher([]language.Tag{
	language.English, // first entry is the fallback
	language.French,
	language.Spanish,
})

// Match negotiates a supported language from a BCP 47 string or an
// Accept-Language header value. Unknown or empty input yields DefaultLang.
func Match(requested string) Lang {
	if requested == "" {
		return DefaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(requested)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, index, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	switch index {
	case 1:
		return French
	case 2:
		return Spanish
	default:
		return English
	}
}

// Pick selects the variant for lang, falling back to the English value when
// the localized field is empty.
func Pick(lang Lang, en, fr, es string) string {
	var v string
	switch lang {
	case French:
		v = fr
	case Spanish:
		v = es
	default:
		v = en
	}
	if v == "" {
		return en
	}
	return v
}
