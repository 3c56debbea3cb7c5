package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/louisbranch/hephaestus/internal/storage"
)

// GetMemberProfile loads the public profile of one member by case-insensitive
// username. Email is cleared unless the member opted into displaying it.
func (s *Store) GetMemberProfile(ctx context.Context, username string) (storage.MemberProfile, error) {
	if s == nil || s.sqlDB == nil {
		return storage.MemberProfile{}, fmt.Errorf("storage is not configured")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return storage.MemberProfile{}, fmt.Errorf("username is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT username, join_date, email, disp_email
		 FROM member
		 WHERE LOWER(username) = LOWER(?)`,
		username,
	)

	var profile storage.MemberProfile
	var dispEmail int64
	if err := row.Scan(&profile.Username, &profile.JoinDate, &profile.Email, &dispEmail); err != nil {
		if err == sql.ErrNoRows {
			return storage.MemberProfile{}, storage.ErrNotFound
		}
		return storage.MemberProfile{}, fmt.Errorf("get member profile: %w", err)
	}
	if dispEmail == 0 {
		profile.Email = ""
	}
	return profile, nil
}

// FindCredentialMatches loads members whose username or email collides
// case-insensitively with the submitted values.
func (s *Store) FindCredentialMatches(ctx context.Context, username, email string) ([]storage.CredentialMatch, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT username, email
		 FROM member
		 WHERE LOWER(username) = LOWER(?) OR LOWER(email) = LOWER(?)`,
		username, email,
	)
	if err != nil {
		return nil, fmt.Errorf("find credential matches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var matches []storage.CredentialMatch
	for rows.Next() {
		var match storage.CredentialMatch
		if err := rows.Scan(&match.Username, &match.Email); err != nil {
			return nil, fmt.Errorf("scan credential match: %w", err)
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credential matches: %w", err)
	}
	return matches, nil
}

// CreateMember inserts a new member row. A case-insensitive username or email
// collision reports storage.ErrAlreadyExists via the unique indexes, which
// backs the signup pre-check against concurrent submissions.
func (s *Store) CreateMember(ctx context.Context, member storage.NewMember) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	member.Username = strings.TrimSpace(member.Username)
	if member.Username == "" {
		return fmt.Errorf("username is required")
	}
	member.Email = strings.TrimSpace(member.Email)
	if member.Email == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(member.JoinDate) == "" {
		return fmt.Errorf("join date is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO member (username, email, password, join_date)
		 VALUES (?, ?, ?, ?)`,
		member.Username, member.Email, member.Password, member.JoinDate,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
