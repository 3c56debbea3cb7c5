// Package signup serves account registration.
package signup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/hephaestus/internal/storage"
	"github.com/louisbranch/hephaestus/internal/web/templates"
)

const defaultQueryTimeout = 5 * time.Second

type service struct {
	store        storage.MemberStore
	queryTimeout time.Duration
	now          func() time.Time
}

// outcome is the result of one signup attempt. Reason is set only on
// rejection and matches the template's reason constants.
type outcome struct {
	accepted bool
	reason   string
}

type submission struct {
	username        string
	email           string
	password        string
	confirmPassword string
}

// signup checks the candidate credentials against existing members and
// creates the account when every check passes. Username and email collisions
// are tracked independently so the surfaced reason names the actual conflict.
func (s service) signup(ctx context.Context, sub submission) (outcome, error) {
	timeout := s.queryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	username := strings.TrimSpace(sub.username)
	email := strings.TrimSpace(sub.email)
	if username == "" || email == "" || sub.password == "" {
		return outcome{}, nil
	}
	if sub.password != sub.confirmPassword {
		return outcome{reason: templates.SignupReasonPasswordMismatch}, nil
	}

	matches, err := s.store.FindCredentialMatches(ctx, username, email)
	if err != nil {
		return outcome{}, fmt.Errorf("check existing credentials: %w", err)
	}
	usernameFree, emailFree := true, true
	for _, match := range matches {
		if strings.EqualFold(match.Username, username) {
			usernameFree = false
		}
		if strings.EqualFold(match.Email, email) {
			emailFree = false
		}
	}
	if !usernameFree {
		return outcome{reason: templates.SignupReasonUsernameTaken}, nil
	}
	if !emailFree {
		return outcome{reason: templates.SignupReasonEmailTaken}, nil
	}

	member := storage.NewMember{
		Username: username,
		Email:    email,
		Password: sub.password,
		JoinDate: s.now().UTC().Format("2006-01-02"),
	}
	if err := s.store.CreateMember(ctx, member); err != nil {
		// Another signup can win the race between the check and the
		// insert. The unique indexes reject it and the form reports a
		// plain rejection.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return outcome{}, nil
		}
		return outcome{}, fmt.Errorf("create member: %w", err)
	}
	return outcome{accepted: true}, nil
}
