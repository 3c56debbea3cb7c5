// Package weberror renders shared error page responses for web modules.
package weberror

import (
	"net/http"

	apperrors "github.com/louisbranch/hephaestus/internal/web/platform/errors"
	"github.com/louisbranch/hephaestus/internal/web/platform/pagerender"
	"github.com/louisbranch/hephaestus/internal/web/templates"
)

// WriteErrorPage writes the error page matching the typed error's status.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	WriteStatusPage(w, r, statusCode)
}

// WriteStatusPage writes the error page for an explicit status code.
func WriteStatusPage(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	page := pagerender.Page{
		Title:      templates.ErrorPageTitle(statusCode),
		StatusCode: statusCode,
		Fragment:   templates.ErrorPage(statusCode),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}
