// Package cli defines the Cobra command tree for the stackforge CLI. The
// root command runs the interactive scaffold; version and config are the
// only subcommands. Command implementations delegate to internal packages
// for business logic and only handle I/O wiring and user interaction.
package cli
