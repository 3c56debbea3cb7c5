package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// ProfileView feeds a member profile page. Email is empty when the member
// keeps it private. AccentColor is a presentational hex value chosen by the
// route.
type ProfileView struct {
	Username    string
	JoinDate    string
	Email       string
	AccentColor string
}

// ProfilePage renders a member's public profile.
func ProfilePage(view ProfileView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<section class=\"profile\" style=\"border-color: ")
		b.WriteString(templ.EscapeString(view.AccentColor))
		b.WriteString("\">\n<h1>")
		b.WriteString(templ.EscapeString(view.Username))
		b.WriteString("</h1>\n<p class=\"join-date\">Member since ")
		b.WriteString(templ.EscapeString(view.JoinDate))
		b.WriteString("</p>\n")
		if view.Email != "" {
			b.WriteString("<p class=\"email\">Contact: ")
			b.WriteString(templ.EscapeString(view.Email))
			b.WriteString("</p>\n")
		}
		b.WriteString("</section>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
