package preflight

import (
	"fmt"
	"io/fs"
	"os"
)

// gitDir is the one entry tolerated in an otherwise empty destination. Users
// commonly `git init` before scaffolding.
const gitDir = ".git"

// DestinationIsSafe reports whether dir may be scaffolded into: the directory
// has no entries, or exactly one entry that is the .git metadata directory.
// Any other content makes the destination unsafe. The check is read-only.
func DestinationIsSafe(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("reading destination %s: %w", dir, err)
	}

	switch len(entries) {
	case 0:
		return true, nil
	case 1:
		return entries[0].Name() == gitDir && entries[0].IsDir(), nil
	default:
		return false, nil
	}
}

// TemplateExists reports whether the bundled template tree is present and
// readable at root within fsys. A failure here is a packaging defect, not a
// user error.
func TemplateExists(fsys fs.FS, root string) error {
	info, err := fs.Stat(fsys, root)
	if err != nil {
		return fmt.Errorf("template source %q not found: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("template source %q is not a directory", root)
	}
	return nil
}
