// Package i18n resolves the request language used by page rendering.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

var supported = []language.Tag{language.English}

var matcher = language.NewMatcher(supported)

// ResolveLang matches the Accept-Language header against the site's supported
// languages and returns the tag for the page lang attribute.
func ResolveLang(r *http.Request) string {
	if r == nil {
		return language.English.String()
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return language.English.String()
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx].String()
}
