// Package manifest builds the scaffolded project's descriptor and serializes
// it as package.json. Building is a pure function of the project name; the
// script table and dependency ranges are fixed. The serialized output is
// validated against an embedded JSON Schema before it ships.
package manifest
