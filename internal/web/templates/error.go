package templates

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// ErrorPageTitle returns the browser title for an error page.
func ErrorPageTitle(statusCode int) string {
	if statusCode == http.StatusNotFound {
		return "Page not found"
	}
	return "Something went wrong"
}

// ErrorPage renders a minimal error page for the given status code.
func ErrorPage(statusCode int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		heading := "Something went wrong"
		message := "The page could not be loaded. Please try again later."
		if statusCode == http.StatusNotFound {
			heading = "Page not found"
			message = "The world, article, or member you are looking for does not exist."
		}

		var b strings.Builder
		b.WriteString("<section class=\"error-page\">\n<h1>")
		b.WriteString(templ.EscapeString(heading))
		b.WriteString("</h1>\n<p>")
		b.WriteString(templ.EscapeString(message))
		b.WriteString("</p>\n<p><a href=\"/\">Back to the home page</a></p>\n</section>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
