package worlds

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/hephaestus/internal/storage"
)

type stubWorldStore struct {
	overviews    map[string]storage.WorldOverview
	categories   map[string][]storage.CategoryArticles
	descriptions map[string]string
	articles     map[string]storage.Article
}

func (s stubWorldStore) GetWorldOverview(_ context.Context, worldID string) (storage.WorldOverview, error) {
	overview, ok := s.overviews[worldID]
	if !ok {
		return storage.WorldOverview{}, storage.ErrNotFound
	}
	return overview, nil
}

func (s stubWorldStore) ListCategoryArticles(_ context.Context, worldID string) ([]storage.CategoryArticles, error) {
	return s.categories[worldID], nil
}

func (s stubWorldStore) GetWorldDescription(_ context.Context, worldID string) (string, error) {
	description, ok := s.descriptions[worldID]
	if !ok {
		return "", storage.ErrNotFound
	}
	return description, nil
}

func (s stubWorldStore) GetArticle(_ context.Context, worldID, categoryName, articleName string) (storage.Article, error) {
	article, ok := s.articles[worldID+"/"+categoryName+"/"+articleName]
	if !ok {
		return storage.Article{}, storage.ErrNotFound
	}
	return article, nil
}

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	store := stubWorldStore{
		overviews: map[string]storage.WorldOverview{
			"1": {
				WorldID:       "1",
				Name:          "Thessaly",
				Creator:       "daedalus",
				CategoryCount: 2,
				ArticleCount:  3,
				PrimaryGenre:  "High Fantasy",
			},
		},
		categories: map[string][]storage.CategoryArticles{
			"1": {
				{Category: "Geography", Articles: []string{"Skyharbor", "The Basalt Chains"}},
				{Category: "Lore", Articles: []string{"The Sundering"}},
			},
		},
		descriptions: map[string]string{
			"1": "A shattered continent held together by chains.",
		},
		articles: map[string]storage.Article{
			"1/Lore/The Sundering": {
				Name: "The Sundering",
				Body: "The day the continent broke apart.",
			},
		},
	}

	mux := http.NewServeMux()
	Register(mux, store, time.Second)
	return mux
}

func get(t *testing.T, mux *http.ServeMux, target string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	body, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return rec.Code, string(body)
}

func TestHomePageShowsFeaturedWorld(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	status, body := get(t, mux, "/")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	for _, want := range []string{
		"Thessaly",
		"daedalus",
		"High Fantasy",
		"A shattered continent held together by chains.",
		"Skyharbor",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestHomePageIsDeterministic(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	_, first := get(t, mux, "/")
	_, second := get(t, mux, "/")
	if first != second {
		t.Fatal("home page rendered differently across requests")
	}
}

func TestWorldPageNotFound(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	status, body := get(t, mux, "/world/999")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", status, http.StatusNotFound)
	}
	if !strings.Contains(body, "Page not found") {
		t.Error("missing not-found copy")
	}
}

func TestArticlePage(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	status, body := get(t, mux, "/world/1/Lore/The%20Sundering")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if !strings.Contains(body, "The day the continent broke apart.") {
		t.Error("missing article body")
	}
	if !strings.Contains(body, "Geography") {
		t.Error("missing sidebar category")
	}
}

func TestArticlePageNotFound(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	status, _ := get(t, mux, "/world/1/Lore/Missing")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", status, http.StatusNotFound)
	}
}

func TestUnknownPathGetsNotFoundPage(t *testing.T) {
	t.Parallel()

	mux := newTestMux(t)
	status, body := get(t, mux, "/no/such/page/here")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", status, http.StatusNotFound)
	}
	if !strings.Contains(body, "Page not found") {
		t.Error("missing not-found copy")
	}
}
