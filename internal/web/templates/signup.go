package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Rejection reasons surfaced on the signup page.
const (
	SignupReasonUsernameTaken    = "username_taken"
	SignupReasonEmailTaken       = "email_taken"
	SignupReasonPasswordMismatch = "password_mismatch"
)

// SignupView feeds the signup page, including the outcome of a submission
// when the page re-renders after a POST.
type SignupView struct {
	Submitted bool
	Accepted  bool
	Reason    string
	Username  string
	Email     string
}

// SignupPage renders the signup form and, after a submission, its outcome.
func SignupPage(view SignupView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<section class=\"signup\">\n<h1>Create an account</h1>\n")
		if view.Submitted {
			if view.Accepted {
				b.WriteString("<p class=\"notice notice-ok\">Welcome aboard! Your account was created.</p>\n")
			} else {
				b.WriteString("<p class=\"notice notice-error\">")
				b.WriteString(templ.EscapeString(signupReasonCopy(view.Reason)))
				b.WriteString("</p>\n")
			}
		}
		b.WriteString("<form method=\"post\" action=\"/signup1\">\n")
		writeTextField(&b, "username", "Username", view.Username)
		writeTextField(&b, "email", "Email", view.Email)
		writePasswordField(&b, "password", "Password")
		writePasswordField(&b, "confirm_password", "Confirm password")
		b.WriteString("<button type=\"submit\">Sign up</button>\n</form>\n</section>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func signupReasonCopy(reason string) string {
	switch reason {
	case SignupReasonUsernameTaken:
		return "That username is already taken."
	case SignupReasonEmailTaken:
		return "An account with that email already exists."
	case SignupReasonPasswordMismatch:
		return "The passwords do not match."
	default:
		return "We could not create your account. Please try again."
	}
}

func writeTextField(b *strings.Builder, name, label, value string) {
	b.WriteString("<label>")
	b.WriteString(label)
	b.WriteString("<input type=\"text\" name=\"")
	b.WriteString(name)
	b.WriteString("\" value=\"")
	b.WriteString(templ.EscapeString(value))
	b.WriteString("\" required></label>\n")
}

func writePasswordField(b *strings.Builder, name, label string) {
	b.WriteString("<label>")
	b.WriteString(label)
	b.WriteString("<input type=\"password\" name=\"")
	b.WriteString(name)
	b.WriteString("\" required></label>\n")
}
