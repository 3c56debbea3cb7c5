package templates

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/hephaestus/internal/web/routepath"
)

// WorldSidebar carries the world summary and category index rendered beside
// world and article content.
type WorldSidebar struct {
	WorldID       string
	Name          string
	Creator       string
	CategoryCount int
	ArticleCount  int
	PrimaryGenre  string
	Categories    []CategoryGroup
}

// CategoryGroup lists article names filed under one category, in the order
// the store returned them.
type CategoryGroup struct {
	Name     string
	Articles []string
}

func writeWorldSidebar(b *strings.Builder, sidebar WorldSidebar) {
	b.WriteString("<aside class=\"world-sidebar\">\n<h2><a href=\"")
	b.WriteString(templ.EscapeString(routepath.World(sidebar.WorldID)))
	b.WriteString("\">")
	b.WriteString(templ.EscapeString(sidebar.Name))
	b.WriteString("</a></h2>\n<dl class=\"world-facts\">\n")
	writeFact(b, "Creator", "<a href=\""+templ.EscapeString(routepath.User(sidebar.Creator))+"\">"+templ.EscapeString(sidebar.Creator)+"</a>")
	writeFact(b, "Genre", templ.EscapeString(sidebar.PrimaryGenre))
	writeFact(b, "Categories", strconv.Itoa(sidebar.CategoryCount))
	writeFact(b, "Articles", strconv.Itoa(sidebar.ArticleCount))
	b.WriteString("</dl>\n")

	for _, group := range sidebar.Categories {
		b.WriteString("<section class=\"category\">\n<h3>")
		b.WriteString(templ.EscapeString(group.Name))
		b.WriteString("</h3>\n<ul>\n")
		for _, articleName := range group.Articles {
			b.WriteString("<li><a href=\"")
			b.WriteString(templ.EscapeString(routepath.Article(sidebar.WorldID, group.Name, articleName)))
			b.WriteString("\">")
			b.WriteString(templ.EscapeString(articleName))
			b.WriteString("</a></li>\n")
		}
		b.WriteString("</ul>\n</section>\n")
	}
	b.WriteString("</aside>\n")
}

func writeFact(b *strings.Builder, label, valueHTML string) {
	b.WriteString("<dt>")
	b.WriteString(label)
	b.WriteString("</dt><dd>")
	b.WriteString(valueHTML)
	b.WriteString("</dd>\n")
}
