package worlds

import (
	"net/http"

	"github.com/louisbranch/hephaestus/internal/web/platform/pagerender"
	"github.com/louisbranch/hephaestus/internal/web/platform/weberror"
	"github.com/louisbranch/hephaestus/internal/web/templates"
)

type handlers struct {
	service service
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	sidebar, description, err := h.service.worldPage(r.Context(), featuredWorldID)
	if err != nil {
		weberror.WriteErrorPage(w, r, err)
		return
	}
	page := pagerender.Page{
		Title: sidebar.Name,
		Fragment: templates.HomePage(templates.HomeView{
			Sidebar:     sidebar,
			Description: description,
		}),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteErrorPage(w, r, err)
	}
}

func (h handlers) handleWorld(w http.ResponseWriter, r *http.Request) {
	worldID := r.PathValue("worldID")
	sidebar, description, err := h.service.worldPage(r.Context(), worldID)
	if err != nil {
		weberror.WriteErrorPage(w, r, err)
		return
	}
	page := pagerender.Page{
		Title: sidebar.Name,
		Fragment: templates.WorldPage(templates.WorldView{
			Sidebar:     sidebar,
			Description: description,
		}),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteErrorPage(w, r, err)
	}
}

func (h handlers) handleArticle(w http.ResponseWriter, r *http.Request) {
	worldID := r.PathValue("worldID")
	categoryName := r.PathValue("categoryName")
	articleName := r.PathValue("articleName")

	sidebar, _, err := h.service.worldPage(r.Context(), worldID)
	if err != nil {
		weberror.WriteErrorPage(w, r, err)
		return
	}
	article, err := h.service.article(r.Context(), worldID, categoryName, articleName)
	if err != nil {
		weberror.WriteErrorPage(w, r, err)
		return
	}
	page := pagerender.Page{
		Title: article.Name,
		Fragment: templates.ArticlePage(templates.ArticleView{
			Sidebar: sidebar,
			Name:    article.Name,
			Body:    article.Body,
		}),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteErrorPage(w, r, err)
	}
}

func (h handlers) handleArticleSample(w http.ResponseWriter, r *http.Request) {
	page := pagerender.Page{
		Title:    "Article",
		Fragment: templates.ArticleSamplePage(),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteErrorPage(w, r, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteStatusPage(w, r, http.StatusNotFound)
}
