package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// HomeView feeds the landing page, which showcases the featured world.
type HomeView struct {
	Sidebar     WorldSidebar
	Description string
}

// WorldView feeds a world's landing page.
type WorldView struct {
	Sidebar     WorldSidebar
	Description string
}

// ArticleView feeds an article page, with the owning world's sidebar.
type ArticleView struct {
	Sidebar WorldSidebar
	Name    string
	Body    string
}

// HomePage renders the landing page around the featured world.
func HomePage(view HomeView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<section class=\"hero\">\n<h1>Build worlds together</h1>\n")
		b.WriteString("<p>Browse collaborative settings, their lore, and the people writing them.</p>\n</section>\n")
		b.WriteString("<div class=\"world-page\">\n")
		writeWorldSidebar(&b, view.Sidebar)
		b.WriteString("<article class=\"world-description\">\n<h2>Featured world</h2>\n<p>")
		b.WriteString(templ.EscapeString(view.Description))
		b.WriteString("</p>\n</article>\n</div>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// WorldPage renders a world overview with its category index.
func WorldPage(view WorldView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<div class=\"world-page\">\n")
		writeWorldSidebar(&b, view.Sidebar)
		b.WriteString("<article class=\"world-description\">\n<h1>")
		b.WriteString(templ.EscapeString(view.Sidebar.Name))
		b.WriteString("</h1>\n<p>")
		b.WriteString(templ.EscapeString(view.Description))
		b.WriteString("</p>\n</article>\n</div>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ArticlePage renders one article beside its world sidebar.
func ArticlePage(view ArticleView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<div class=\"world-page\">\n")
		writeWorldSidebar(&b, view.Sidebar)
		b.WriteString("<article class=\"article-body\">\n<h1>")
		b.WriteString(templ.EscapeString(view.Name))
		b.WriteString("</h1>\n<p>")
		b.WriteString(templ.EscapeString(view.Body))
		b.WriteString("</p>\n</article>\n</div>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ArticleSamplePage renders the static article layout sample.
func ArticleSamplePage() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<article class=\"article-body\">\n<h1>Article layout</h1>\n")
		b.WriteString("<p>This page previews how articles are laid out. Pick a world from the home page to read real entries.</p>\n</article>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
