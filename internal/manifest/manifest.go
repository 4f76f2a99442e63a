package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Build returns the project descriptor for a freshly scaffolded project.
// It is a pure function of the project name: everything else in the
// descriptor is fixed.
//
// The build script is a fallback chain: esbuild bundles fast when present,
// tsc is the compiler of last resort.
func Build(projectName string) *PackageJSON {
	return &PackageJSON{
		Name:        projectName,
		Version:     "0.1.0",
		Description: projectName + " server",
		Type:        "module",
		Main:        "dist/index.js",
		Scripts: map[string]string{
			"start":      "node dist/index.js",
			"start:bun":  "bun dist/index.js",
			"build":      "esbuild src/index.ts --bundle --platform=node --format=esm --outfile=dist/index.js || tsc",
			"build:http": "esbuild src/http.ts --bundle --platform=node --format=esm --outfile=dist/http.js || tsc",
			"dev":        "tsx watch src/index.ts",
			"dev:http":   "tsx watch src/http.ts",
		},
		Dependencies: map[string]string{
			"express": "^4.21.2",
			"zod":     "^3.24.1",
			"cors":    "^2.8.5",
		},
		DevDependencies: map[string]string{
			"typescript":     "^5.7.2",
			"esbuild":        "^0.24.0",
			"tsx":            "^4.19.2",
			"@types/express": "^4.17.21",
			"@types/cors":    "^2.8.17",
			"@types/node":    "^22.10.2",
		},
	}
}

// Encode serializes the descriptor as indented JSON with a trailing newline,
// ready to write as package.json.
func (p *PackageJSON) Encode() ([]byte, error) {
	out, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", FileName, err)
	}
	return append(out, '\n'), nil
}

// CheckRanges verifies that every declared dependency range parses as a
// valid semver constraint. A failure indicates a broken descriptor table,
// not user input.
func (p *PackageJSON) CheckRanges() error {
	for _, deps := range []map[string]string{p.Dependencies, p.DevDependencies} {
		for name, rng := range deps {
			if _, err := semver.NewConstraint(rng); err != nil {
				return fmt.Errorf("dependency %s has invalid range %q: %w", name, rng, err)
			}
		}
	}
	return nil
}
