// Package assets embeds the template files rendered into new projects.
//
// Assets are plain text with {{name}} placeholders and begin-/end- section
// markers; see the tmpl package for the syntax. The CI workflow template
// is stored as github-actions.yml because embed skips dot-prefixed names;
// the engine maps it to .github/workflows/playwright.yml.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed templates
var root embed.FS

// Templates returns the embedded template tree, rooted at the directory
// holding the individual assets.
func Templates() fs.FS {
	sub, err := fs.Sub(root, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
