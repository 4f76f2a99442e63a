// Package preflight holds the read-only checks run before scaffolding touches
// the filesystem: the destination must be empty (a lone .git directory is
// tolerated) and the bundled template tree must be present.
package preflight
