// Package locale converts locale tags into the language-code forms the
// translation backends expect, and holds the catalog of locales a
// deployment advertises as translatable.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// LanguageCode strips the region suffix from a locale tag: "fr-FR"
// becomes "fr". A tag without a region separator is returned whole.
// Underscore separators ("pt_BR") are tolerated.
func LanguageCode(tag string) string {
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		return tag[:i]
	}
	return tag
}

// UpperLanguageCode returns the uppercase language code form required by
// backends that key languages that way: "de-DE" becomes "DE".
func UpperLanguageCode(tag string) string {
	return strings.ToUpper(LanguageCode(tag))
}

// Valid reports whether tag parses as a BCP-47 language tag.
func Valid(tag string) bool {
	if tag == "" {
		return false
	}
	_, err := language.Parse(tag)
	return err == nil
}
