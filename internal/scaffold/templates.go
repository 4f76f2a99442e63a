package scaffold

import (
	"embed"
	"io/fs"
)

// TreeDir is the subdirectory of the template root that gets mirrored into
// the destination. Files directly under the root are auxiliary files copied
// individually (see auxFiles).
const TreeDir = "app"

//go:embed templates
var templatesFS embed.FS

// auxFiles are top-level template files copied to the destination under a
// different name. npm-style packaging strips dotfiles, so the template ships
// them undotted. A missing auxiliary file is skipped silently.
var auxFiles = []struct {
	Src, Dst string
}{
	{Src: "gitignore", Dst: ".gitignore"},
	{Src: "env.example", Dst: ".env.example"},
}

// TemplateFS returns the bundled template root.
func TemplateFS() (fs.FS, error) {
	return fs.Sub(templatesFS, "templates")
}
