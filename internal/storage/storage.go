// Package storage defines persistence contracts for wiki content and members.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// WorldOverview stores the sidebar summary for one world.
type WorldOverview struct {
	WorldID       string
	Name          string
	Creator       string
	CategoryCount int
	ArticleCount  int
	PrimaryGenre  string
}

// CategoryArticles stores the article names filed under one category,
// in encounter order.
type CategoryArticles struct {
	Category string
	Articles []string
}

// Article stores one article's display content.
type Article struct {
	Name string
	Body string
}

// MemberProfile stores the public view of one member. Email is empty unless
// the member opted into displaying it.
type MemberProfile struct {
	Username string
	JoinDate string
	Email    string
}

// CredentialMatch stores one existing member row that collides with a signup
// probe on username or email.
type CredentialMatch struct {
	Username string
	Email    string
}

// NewMember stores the inputs for creating a member.
type NewMember struct {
	Username string
	Email    string
	Password string
	JoinDate string
}

// WorldStore reads world, category, and article content.
type WorldStore interface {
	GetWorldOverview(ctx context.Context, worldID string) (WorldOverview, error)
	ListCategoryArticles(ctx context.Context, worldID string) ([]CategoryArticles, error)
	GetWorldDescription(ctx context.Context, worldID string) (string, error)
	GetArticle(ctx context.Context, worldID, categoryName, articleName string) (Article, error)
}

// MemberStore reads and creates member records.
type MemberStore interface {
	GetMemberProfile(ctx context.Context, username string) (MemberProfile, error)
	FindCredentialMatches(ctx context.Context, username, email string) ([]CredentialMatch, error)
	CreateMember(ctx context.Context, member NewMember) error
}
