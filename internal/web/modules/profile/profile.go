// Package profile serves public member profile pages.
package profile

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/louisbranch/hephaestus/internal/dateformat"
	"github.com/louisbranch/hephaestus/internal/storage"
	apperrors "github.com/louisbranch/hephaestus/internal/web/platform/errors"
	"github.com/louisbranch/hephaestus/internal/web/platform/pagerender"
	"github.com/louisbranch/hephaestus/internal/web/platform/weberror"
	"github.com/louisbranch/hephaestus/internal/web/routepath"
	"github.com/louisbranch/hephaestus/internal/web/templates"
)

const defaultQueryTimeout = 5 * time.Second

// accentColor borders every profile card.
const accentColor = "#aaaaaa"

type service struct {
	store        storage.MemberStore
	queryTimeout time.Duration
}

// Register mounts the profile routes on mux.
func Register(mux *http.ServeMux, store storage.MemberStore, queryTimeout time.Duration) {
	h := handlers{service: service{store: store, queryTimeout: queryTimeout}}
	mux.HandleFunc("GET "+routepath.UserPattern, h.handleProfile)
}

type handlers struct {
	service service
}

func (h handlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	view, err := h.service.profile(r.Context(), username)
	if err != nil {
		weberror.WriteErrorPage(w, r, err)
		return
	}
	page := pagerender.Page{
		Title:    view.Username,
		Fragment: templates.ProfilePage(view),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteErrorPage(w, r, err)
	}
}

func (s service) profile(ctx context.Context, username string) (templates.ProfileView, error) {
	timeout := s.queryTimeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	member, err := s.store.GetMemberProfile(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return templates.ProfileView{}, apperrors.E(apperrors.KindNotFound, "load member profile: not found")
		case errors.Is(err, context.DeadlineExceeded):
			return templates.ProfileView{}, apperrors.E(apperrors.KindUnavailable, "load member profile: query timed out")
		default:
			return templates.ProfileView{}, fmt.Errorf("load member profile: %w", err)
		}
	}

	joinDate, err := dateformat.JoinDate(member.JoinDate)
	if err != nil {
		return templates.ProfileView{}, fmt.Errorf("format join date for %q: %w", member.Username, err)
	}
	return templates.ProfileView{
		Username:    member.Username,
		JoinDate:    joinDate,
		Email:       member.Email,
		AccentColor: accentColor,
	}, nil
}
