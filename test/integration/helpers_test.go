//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	buildOnce sync.Once
	buildErr  error
	binPath   string
)

// buildBinary compiles the stackforge binary once per test run.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		dir, err := os.MkdirTemp("", "stackforge-it")
		if err != nil {
			buildErr = err
			return
		}
		binPath = filepath.Join(dir, "stackforge")

		cmd := exec.Command("go", "build", "-o", binPath, "github.com/stackforge-labs/stackforge")
		cmd.Env = os.Environ()
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = err
			t.Logf("build output: %s", out)
		}
	})
	if buildErr != nil {
		t.Fatalf("building binary: %v", buildErr)
	}
	return binPath
}

// runResult captures a finished CLI invocation.
type runResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// cliOpts configures one CLI invocation.
type cliOpts struct {
	Dir   string   // working directory
	Home  string   // HOME for the process; share across calls to keep config
	Stdin string   // piped standard input
	Args  []string // command-line arguments
	Env   []string // extra KEY=VALUE pairs
}

// runCLIOpts runs the built binary, isolating HOME and PATH so user config
// and installed package managers don't leak in.
func runCLIOpts(t *testing.T, o cliOpts) *runResult {
	t.Helper()

	bin := buildBinary(t)

	cmd := exec.Command(bin, o.Args...)
	cmd.Dir = o.Dir
	cmd.Stdin = bytes.NewBufferString(o.Stdin)

	home := o.Home
	if home == "" {
		home = t.TempDir()
	}
	cmd.Env = append([]string{
		"HOME=" + home,
		"PATH=" + t.TempDir(), // no package manager resolvable
	}, o.Env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &runResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("running CLI: %v", err)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	return res
}

// runCLI runs the scaffold (no arguments) in dir with the given stdin.
func runCLI(t *testing.T, dir, stdin string, extraEnv ...string) *runResult {
	t.Helper()
	return runCLIOpts(t, cliOpts{Dir: dir, Stdin: stdin, Env: extraEnv})
}
