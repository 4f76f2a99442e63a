// Package prompt provides the line-based interactive question used to name
// the scaffolded project, behind injectable reader/writer pairs.
package prompt
