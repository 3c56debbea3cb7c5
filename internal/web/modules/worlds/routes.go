package worlds

import (
	"net/http"
	"time"

	"github.com/louisbranch/hephaestus/internal/storage"
	"github.com/louisbranch/hephaestus/internal/web/routepath"
)

// Register mounts the world routes on mux. The root handler doubles as the
// site's catch-all, so unmatched paths get the styled not-found page.
func Register(mux *http.ServeMux, store storage.WorldStore, queryTimeout time.Duration) {
	h := handlers{service: service{store: store, queryTimeout: queryTimeout}}

	mux.HandleFunc("GET "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
	mux.HandleFunc("GET "+routepath.ArticleSample, h.handleArticleSample)
	mux.HandleFunc("GET "+routepath.WorldPattern, h.handleWorld)
	mux.HandleFunc("GET "+routepath.ArticlePattern, h.handleArticle)
}
