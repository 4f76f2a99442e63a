// Package scaffold orchestrates a full project scaffold: preflight checks,
// the interactive name prompt, template replication, manifest and README
// generation, and the optional install/build subprocess steps. Each run is a
// one-shot, strictly sequential pass over those stages; a failed build step
// is reported as a warning rather than failing the run.
package scaffold
