package signup

import (
	"net/http"
	"time"

	"github.com/louisbranch/hephaestus/internal/storage"
	"github.com/louisbranch/hephaestus/internal/web/platform/pagerender"
	"github.com/louisbranch/hephaestus/internal/web/platform/weberror"
	"github.com/louisbranch/hephaestus/internal/web/routepath"
	"github.com/louisbranch/hephaestus/internal/web/templates"
)

// Register mounts the signup routes on mux.
func Register(mux *http.ServeMux, store storage.MemberStore, queryTimeout time.Duration) {
	h := handlers{service: service{
		store:        store,
		queryTimeout: queryTimeout,
		now:          time.Now,
	}}
	mux.HandleFunc("GET "+routepath.Signup, h.handleForm)
	mux.HandleFunc("POST "+routepath.SignupSubmit, h.handleSubmit)
}

type handlers struct {
	service service
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, templates.SignupView{})
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteStatusPage(w, r, http.StatusBadRequest)
		return
	}
	sub := submission{
		username:        r.PostFormValue("username"),
		email:           r.PostFormValue("email"),
		password:        r.PostFormValue("password"),
		confirmPassword: r.PostFormValue("confirm_password"),
	}

	result, err := h.service.signup(r.Context(), sub)
	if err != nil {
		weberror.WriteErrorPage(w, r, err)
		return
	}

	view := templates.SignupView{
		Submitted: true,
		Accepted:  result.accepted,
		Reason:    result.reason,
	}
	if !result.accepted {
		view.Username = sub.username
		view.Email = sub.email
	}
	h.renderForm(w, r, view)
}

func (h handlers) renderForm(w http.ResponseWriter, r *http.Request, view templates.SignupView) {
	page := pagerender.Page{
		Title:    "Sign up",
		Fragment: templates.SignupPage(view),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteErrorPage(w, r, err)
	}
}
