package pkgtool

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Tool describes one package-manager candidate and the argument lists for
// the two subprocess steps it runs after scaffolding.
type Tool struct {
	Name        string
	InstallArgs []string
	BuildArgs   []string
}

// candidates is the priority-ordered probe chain. The last entry is the
// fixed default used when nothing on the list is installed.
var candidates = []Tool{
	{Name: "yarn", InstallArgs: []string{"install"}, BuildArgs: []string{"build"}},
	{Name: "npm", InstallArgs: []string{"install"}, BuildArgs: []string{"run", "build"}},
}

// lookPath is swappable in tests.
var lookPath = exec.LookPath

// Resolve picks the package tool to use. A non-empty preferred name matching
// a known candidate wins unconditionally; otherwise the candidates are probed
// in order and the first one present on PATH is chosen, defaulting to the
// final candidate when none are found.
func Resolve(preferred string) Tool {
	if preferred != "" {
		for _, c := range candidates {
			if c.Name == preferred {
				return c
			}
		}
	}

	for _, c := range candidates {
		if _, err := lookPath(c.Name); err == nil {
			return c
		}
	}
	return candidates[len(candidates)-1]
}

// Install runs the dependency-install step in dir, inheriting the provided
// streams so the tool's own progress output reaches the user's terminal.
func (t Tool) Install(ctx context.Context, dir string, in io.Reader, out, errw io.Writer) error {
	return t.run(ctx, dir, t.InstallArgs, in, out, errw)
}

// Build runs the build step in dir.
func (t Tool) Build(ctx context.Context, dir string, in io.Reader, out, errw io.Writer) error {
	return t.run(ctx, dir, t.BuildArgs, in, out, errw)
}

func (t Tool) run(ctx context.Context, dir string, args []string, in io.Reader, out, errw io.Writer) error {
	bin, err := lookPath(t.Name)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", t.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.Stderr = errw

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %v: %w", t.Name, args, err)
	}
	return nil
}
