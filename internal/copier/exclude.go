package copier

// excludedNames are entries never copied from the template tree. Matching is
// exact and case-sensitive on the entry name alone, at any depth. An excluded
// directory is skipped entirely, including its descendants.
var excludedNames = map[string]bool{
	"node_modules":      true, // dependency cache
	".git":              true, // version-control metadata
	"dist":              true, // pre-built output
	"bin":               true, // end-user executables
	"package-lock.json": true, // npm lock file
	"yarn.lock":         true, // yarn lock file
	"pnpm-lock.yaml":    true, // pnpm lock file
	"bun.lockb":         true, // bun lock file
	"LICENSE":           true, // packaging-only license
	".DS_Store":         true,
}

// Excluded reports whether the named entry is skipped during replication.
func Excluded(name string) bool {
	return excludedNames[name]
}
