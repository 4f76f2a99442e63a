// Package pkgtool resolves which JavaScript package manager to use for the
// post-scaffold install and build steps. Resolution is a priority-ordered
// probe of PATH (yarn, then npm) with npm as the fixed default; a user
// preference from config short-circuits the probe.
package pkgtool
