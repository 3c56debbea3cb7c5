package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/louisbranch/hephaestus/internal/storage"
)

type stubWorldStore struct{}

func (stubWorldStore) GetWorldOverview(context.Context, string) (storage.WorldOverview, error) {
	return storage.WorldOverview{WorldID: "1", Name: "Thessaly", Creator: "daedalus", PrimaryGenre: "High Fantasy"}, nil
}

func (stubWorldStore) ListCategoryArticles(context.Context, string) ([]storage.CategoryArticles, error) {
	return nil, nil
}

func (stubWorldStore) GetWorldDescription(context.Context, string) (string, error) {
	return "A shattered continent.", nil
}

func (stubWorldStore) GetArticle(context.Context, string, string, string) (storage.Article, error) {
	return storage.Article{}, storage.ErrNotFound
}

type stubMemberStore struct{}

func (stubMemberStore) GetMemberProfile(context.Context, string) (storage.MemberProfile, error) {
	return storage.MemberProfile{}, storage.ErrNotFound
}

func (stubMemberStore) FindCredentialMatches(context.Context, string, string) ([]storage.CredentialMatch, error) {
	return nil, nil
}

func (stubMemberStore) CreateMember(context.Context, storage.NewMember) error {
	return nil
}

func testConfig() Config {
	return Config{
		HTTPAddr:     "127.0.0.1:0",
		QueryTimeout: time.Second,
		WorldStore:   stubWorldStore{},
		MemberStore:  stubMemberStore{},
	}
}

func TestNewServerRequiresStores(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.WorldStore = nil
	if _, err := NewServer(cfg); err == nil {
		t.Fatal("expected error for missing world store")
	}

	cfg = testConfig()
	cfg.MemberStore = nil
	if _, err := NewServer(cfg); err == nil {
		t.Fatal("expected error for missing member store")
	}

	cfg = testConfig()
	cfg.HTTPAddr = ""
	if _, err := NewServer(cfg); err == nil {
		t.Fatal("expected error for missing address")
	}
}

func TestHandlerServesHomePage(t *testing.T) {
	t.Parallel()

	handler := NewHandler(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Thessaly") {
		t.Error("missing world name")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing request id header")
	}
}

func TestHandlerServesStylesheet(t *testing.T) {
	t.Parallel()

	handler := NewHandler(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/static/styles.css", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "site-header") {
		t.Error("missing stylesheet content")
	}
}

func TestListenAndServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(testConfig())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("listen and serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
