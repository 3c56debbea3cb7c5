// Package routepath centralizes route patterns and URL builders for the web
// server.
package routepath

import "net/url"

// Route patterns registered on the root mux. Placeholders use the net/http
// wildcard syntax and are read back with r.PathValue.
const (
	Root           = "/"
	ArticleSample  = "/article"
	WorldPattern   = "/world/{worldID}"
	ArticlePattern = "/world/{worldID}/{categoryName}/{articleName}"
	UserPattern    = "/user/{username}"
	Signup         = "/signup"
	SignupSubmit   = "/signup1"
	StaticPrefix   = "/static/"
)

// World returns the page URL for a world.
func World(worldID string) string {
	return "/world/" + url.PathEscape(worldID)
}

// Article returns the page URL for an article within a world category.
func Article(worldID, categoryName, articleName string) string {
	return World(worldID) + "/" + url.PathEscape(categoryName) + "/" + url.PathEscape(articleName)
}

// User returns the profile page URL for a member.
func User(username string) string {
	return "/user/" + url.PathEscape(username)
}
