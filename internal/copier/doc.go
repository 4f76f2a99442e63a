// Package copier mirrors the bundled template tree into the destination
// directory. It applies a fixed exclusion set at every level (dependency
// caches, lock files, VCS metadata, build output) and overwrites existing
// files. Sources are fs.FS values, so the embedded template and on-disk
// trees in tests go through the same code path.
package copier
