// Package static embeds the site's static assets.
package static

import "embed"

//go:embed styles.css
var FS embed.FS
