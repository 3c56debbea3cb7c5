package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/hephaestus/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/hephaestus/internal/storage"
	"github.com/louisbranch/hephaestus/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for wiki content and members.
// The embedded *sql.DB is a shared connection pool; one Store is opened at
// startup and injected into every service.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a wiki SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection pool.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetWorldOverview loads the sidebar summary for one world. A world without
// a primary genre, categories, or articles has no qualifying row and reports
// storage.ErrNotFound.
func (s *Store) GetWorldOverview(ctx context.Context, worldID string) (storage.WorldOverview, error) {
	if s == nil || s.sqlDB == nil {
		return storage.WorldOverview{}, fmt.Errorf("storage is not configured")
	}
	worldID = strings.TrimSpace(worldID)
	if worldID == "" {
		return storage.WorldOverview{}, fmt.Errorf("world id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT world.name, member.username,
		        COUNT(DISTINCT category.category_id),
		        COUNT(DISTINCT article.article_id),
		        genre.genre
		 FROM world
		 JOIN member ON world.creator_id = member.user_id
		 JOIN category ON world.world_id = category.world_id
		 JOIN article ON world.world_id = article.world_id
		 JOIN genre ON world.world_id = genre.world_id
		 WHERE world.world_id = ? AND genre.primary_genre = 1
		 GROUP BY world.name, member.username, genre.genre`,
		worldID,
	)

	overview := storage.WorldOverview{WorldID: worldID}
	if err := row.Scan(
		&overview.Name,
		&overview.Creator,
		&overview.CategoryCount,
		&overview.ArticleCount,
		&overview.PrimaryGenre,
	); err != nil {
		if err == sql.ErrNoRows {
			return storage.WorldOverview{}, storage.ErrNotFound
		}
		return storage.WorldOverview{}, fmt.Errorf("get world overview: %w", err)
	}
	return overview, nil
}

// ListCategoryArticles loads every (category, article) pair for a world and
// groups article names under their category, preserving first-seen category
// order and appending duplicates in encounter order.
func (s *Store) ListCategoryArticles(ctx context.Context, worldID string) ([]storage.CategoryArticles, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	worldID = strings.TrimSpace(worldID)
	if worldID == "" {
		return nil, fmt.Errorf("world id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT category.name, article.name
		 FROM category
		 JOIN world ON category.world_id = world.world_id
		 JOIN article ON article.category_id = category.category_id
		 WHERE world.world_id = ?
		 ORDER BY category.category_id, article.article_id`,
		worldID,
	)
	if err != nil {
		return nil, fmt.Errorf("list category articles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var groups []storage.CategoryArticles
	position := make(map[string]int)
	for rows.Next() {
		var categoryName, articleName string
		if err := rows.Scan(&categoryName, &articleName); err != nil {
			return nil, fmt.Errorf("scan category article: %w", err)
		}
		idx, seen := position[categoryName]
		if !seen {
			idx = len(groups)
			position[categoryName] = idx
			groups = append(groups, storage.CategoryArticles{Category: categoryName})
		}
		groups[idx].Articles = append(groups[idx].Articles, articleName)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category articles: %w", err)
	}
	return groups, nil
}

// GetWorldDescription loads a world's long-form description.
func (s *Store) GetWorldDescription(ctx context.Context, worldID string) (string, error) {
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("storage is not configured")
	}
	worldID = strings.TrimSpace(worldID)
	if worldID == "" {
		return "", fmt.Errorf("world id is required")
	}

	var description string
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT long_desc FROM world WHERE world_id = ?`,
		worldID,
	).Scan(&description)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("get world description: %w", err)
	}
	return description, nil
}

// GetArticle loads one article by world id, category name, and article name.
// An unknown triple reports storage.ErrNotFound.
func (s *Store) GetArticle(ctx context.Context, worldID, categoryName, articleName string) (storage.Article, error) {
	if s == nil || s.sqlDB == nil {
		return storage.Article{}, fmt.Errorf("storage is not configured")
	}
	worldID = strings.TrimSpace(worldID)
	if worldID == "" {
		return storage.Article{}, fmt.Errorf("world id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT article.name, article.body
		 FROM article
		 JOIN category ON article.category_id = category.category_id
		 JOIN world ON article.world_id = world.world_id
		 WHERE world.world_id = ? AND category.name = ? AND article.name = ?
		 ORDER BY article.article_id
		 LIMIT 1`,
		worldID, categoryName, articleName,
	)

	var article storage.Article
	if err := row.Scan(&article.Name, &article.Body); err != nil {
		if err == sql.ErrNoRows {
			return storage.Article{}, storage.ErrNotFound
		}
		return storage.Article{}, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}
