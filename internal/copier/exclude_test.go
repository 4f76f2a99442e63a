package copier

import "testing"

func TestExcluded(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"node_modules", true},
		{".git", true},
		{"dist", true},
		{"bin", true},
		{"package-lock.json", true},
		{"yarn.lock", true},
		{"pnpm-lock.yaml", true},
		{"bun.lockb", true},
		{"LICENSE", true},
		{".DS_Store", true},
		{"src", false},
		{"package.json", false},
		{"README.md", false},
		// Exact match only: no prefix, suffix, or case-folded matching.
		{"node_modules2", false},
		{"NODE_MODULES", false},
		{"license", false},
		{"Dist", false},
	}

	for _, tt := range tests {
		if got := Excluded(tt.name); got != tt.want {
			t.Errorf("Excluded(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
