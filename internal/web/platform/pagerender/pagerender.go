// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/hephaestus/internal/web/platform/httpx"
	"github.com/louisbranch/hephaestus/internal/web/platform/i18n"
	"github.com/louisbranch/hephaestus/internal/web/templates"
)

// Page describes one page response.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

// WritePage writes a page using the shared layout.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	lang := i18n.ResolveLang(r)
	ctx := httpx.RequestContext(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	return templates.Layout(page.Title, lang).Render(templ.WithChildren(ctx, fragment), w)
}
