// Package worlds serves the home, world, and article pages.
package worlds

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/louisbranch/hephaestus/internal/storage"
	apperrors "github.com/louisbranch/hephaestus/internal/web/platform/errors"
	"github.com/louisbranch/hephaestus/internal/web/templates"
)

const defaultQueryTimeout = 5 * time.Second

// featuredWorldID selects the world showcased on the home page.
const featuredWorldID = "1"

type service struct {
	store        storage.WorldStore
	queryTimeout time.Duration
}

func (s service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.queryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// worldPage loads the sidebar summary, category index, and description for
// one world.
func (s service) worldPage(ctx context.Context, worldID string) (templates.WorldSidebar, string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	overview, err := s.store.GetWorldOverview(ctx, worldID)
	if err != nil {
		return templates.WorldSidebar{}, "", storeError("load world overview", err)
	}
	groups, err := s.store.ListCategoryArticles(ctx, worldID)
	if err != nil {
		return templates.WorldSidebar{}, "", storeError("load category index", err)
	}
	description, err := s.store.GetWorldDescription(ctx, worldID)
	if err != nil {
		return templates.WorldSidebar{}, "", storeError("load world description", err)
	}
	return sidebarView(overview, groups), description, nil
}

// article loads one article within a world.
func (s service) article(ctx context.Context, worldID, categoryName, articleName string) (storage.Article, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	article, err := s.store.GetArticle(ctx, worldID, categoryName, articleName)
	if err != nil {
		return storage.Article{}, storeError("load article", err)
	}
	return article, nil
}

func sidebarView(overview storage.WorldOverview, groups []storage.CategoryArticles) templates.WorldSidebar {
	sidebar := templates.WorldSidebar{
		WorldID:       overview.WorldID,
		Name:          overview.Name,
		Creator:       overview.Creator,
		CategoryCount: overview.CategoryCount,
		ArticleCount:  overview.ArticleCount,
		PrimaryGenre:  overview.PrimaryGenre,
	}
	for _, group := range groups {
		sidebar.Categories = append(sidebar.Categories, templates.CategoryGroup{
			Name:     group.Category,
			Articles: group.Articles,
		})
	}
	return sidebar
}

// storeError translates storage failures into typed web errors.
func storeError(action string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.E(apperrors.KindNotFound, action+": not found")
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.E(apperrors.KindUnavailable, action+": query timed out")
	default:
		return fmt.Errorf("%s: %w", action, err)
	}
}
