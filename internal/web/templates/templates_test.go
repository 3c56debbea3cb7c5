package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()

	var b strings.Builder
	if err := component.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func TestLayoutWrapsChildren(t *testing.T) {
	t.Parallel()

	body := templ.Raw("<p>page body</p>")
	ctx := templ.WithChildren(context.Background(), body)

	var b strings.Builder
	if err := Layout("Thessaly", "en").Render(ctx, &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"<html lang=\"en\">",
		"<title>Thessaly | Hephaestus</title>",
		"/static/styles.css",
		"<p>page body</p>",
		"href=\"/signup\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("layout missing %q", want)
		}
	}
}

func TestLayoutTitleFallsBackToSiteName(t *testing.T) {
	t.Parallel()

	out := render(t, Layout("", "en"))
	if !strings.Contains(out, "<title>Hephaestus</title>") {
		t.Error("empty title should fall back to the site name")
	}
}

func TestWorldPageEscapesContent(t *testing.T) {
	t.Parallel()

	out := render(t, WorldPage(WorldView{
		Sidebar:     WorldSidebar{WorldID: "1", Name: "<b>World</b>", Creator: "maker"},
		Description: "a <script>alert(1)</script> place",
	}))
	if strings.Contains(out, "<script>alert(1)</script>") {
		t.Error("description rendered unescaped")
	}
	if strings.Contains(out, "<b>World</b>") {
		t.Error("world name rendered unescaped")
	}
}

func TestSidebarLinksArticles(t *testing.T) {
	t.Parallel()

	out := render(t, WorldPage(WorldView{
		Sidebar: WorldSidebar{
			WorldID:       "3",
			Name:          "Thessaly",
			Creator:       "daedalus",
			CategoryCount: 1,
			ArticleCount:  1,
			PrimaryGenre:  "High Fantasy",
			Categories: []CategoryGroup{
				{Name: "Lore", Articles: []string{"The Sundering"}},
			},
		},
	}))
	for _, want := range []string{
		"href=\"/world/3\"",
		"href=\"/user/daedalus\"",
		"href=\"/world/3/Lore/The%20Sundering\"",
		"<dt>Genre</dt><dd>High Fantasy</dd>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("sidebar missing %q", want)
		}
	}
}

func TestProfilePageHidesEmptyEmail(t *testing.T) {
	t.Parallel()

	out := render(t, ProfilePage(ProfileView{
		Username:    "icarus",
		JoinDate:    "March 5, 2021",
		AccentColor: "#aaaaaa",
	}))
	if strings.Contains(out, "Contact:") {
		t.Error("contact row rendered without an email")
	}
	if !strings.Contains(out, "Member since March 5, 2021") {
		t.Error("missing join date")
	}
}

func TestSignupPageOutcomes(t *testing.T) {
	t.Parallel()

	accepted := render(t, SignupPage(SignupView{Submitted: true, Accepted: true}))
	if !strings.Contains(accepted, "Your account was created") {
		t.Error("missing acceptance notice")
	}

	rejected := render(t, SignupPage(SignupView{
		Submitted: true,
		Reason:    SignupReasonEmailTaken,
		Username:  "theseus",
	}))
	if !strings.Contains(rejected, "An account with that email already exists.") {
		t.Error("missing rejection reason copy")
	}
	if !strings.Contains(rejected, "value=\"theseus\"") {
		t.Error("username not preserved")
	}

	fresh := render(t, SignupPage(SignupView{}))
	if strings.Contains(fresh, "notice") {
		t.Error("fresh form should carry no notice")
	}
}

func TestErrorPageCopy(t *testing.T) {
	t.Parallel()

	notFound := render(t, ErrorPage(404))
	if !strings.Contains(notFound, "Page not found") {
		t.Error("missing not-found heading")
	}

	internal := render(t, ErrorPage(500))
	if !strings.Contains(internal, "Something went wrong") {
		t.Error("missing generic heading")
	}
}
