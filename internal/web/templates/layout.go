// Package templates renders site pages as templ components with typed
// per-route view models.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const siteName = "Hephaestus"

// Layout wraps page content in the shared HTML shell. Page bodies are passed
// as templ children.
func Layout(title, lang string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!doctype html>\n<html lang=\"")
		b.WriteString(templ.EscapeString(lang))
		b.WriteString("\">\n<head>\n<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n<title>")
		b.WriteString(templ.EscapeString(pageTitle(title)))
		b.WriteString("</title>\n<link rel=\"stylesheet\" href=\"/static/styles.css\">\n</head>\n<body>\n")
		b.WriteString("<header class=\"site-header\"><a class=\"site-name\" href=\"/\">")
		b.WriteString(siteName)
		b.WriteString("</a><nav><a href=\"/signup\">Sign up</a></nav></header>\n<main>\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "\n</main>\n</body>\n</html>\n")
		return err
	})
}

func pageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return siteName
	}
	return title + " | " + siteName
}
