package pkgtool

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

// withLookPath swaps the PATH probe for the duration of a test.
func withLookPath(t *testing.T, fn func(string) (string, error)) {
	t.Helper()
	orig := lookPath
	lookPath = fn
	t.Cleanup(func() { lookPath = orig })
}

func TestResolvePreferredWins(t *testing.T) {
	withLookPath(t, func(name string) (string, error) {
		return "", errors.New("not found")
	})

	got := Resolve("npm")
	if got.Name != "npm" {
		t.Errorf("Resolve(npm) = %q, want npm", got.Name)
	}
}

func TestResolveUnknownPreferredFallsThrough(t *testing.T) {
	withLookPath(t, func(name string) (string, error) {
		if name == "yarn" {
			return "/usr/bin/yarn", nil
		}
		return "", errors.New("not found")
	})

	got := Resolve("cargo")
	if got.Name != "yarn" {
		t.Errorf("Resolve(cargo) = %q, want yarn from the probe chain", got.Name)
	}
}

func TestResolveProbesInOrder(t *testing.T) {
	var probed []string
	withLookPath(t, func(name string) (string, error) {
		probed = append(probed, name)
		if name == "npm" {
			return "/usr/bin/npm", nil
		}
		return "", errors.New("not found")
	})

	got := Resolve("")
	if got.Name != "npm" {
		t.Errorf("Resolve = %q, want npm", got.Name)
	}
	if len(probed) < 1 || probed[0] != "yarn" {
		t.Errorf("probe order = %v, want yarn first", probed)
	}
}

func TestResolveDefaultsToFinalCandidate(t *testing.T) {
	withLookPath(t, func(name string) (string, error) {
		return "", errors.New("not found")
	})

	got := Resolve("")
	if got.Name != "npm" {
		t.Errorf("Resolve with nothing on PATH = %q, want npm", got.Name)
	}
}

func TestBuildArgsDifferPerTool(t *testing.T) {
	yarn := Resolve("yarn")
	npm := Resolve("npm")

	if strings.Join(yarn.BuildArgs, " ") != "build" {
		t.Errorf("yarn build args = %v", yarn.BuildArgs)
	}
	if strings.Join(npm.BuildArgs, " ") != "run build" {
		t.Errorf("npm build args = %v", npm.BuildArgs)
	}
}

func TestInstallMissingToolErrors(t *testing.T) {
	withLookPath(t, func(name string) (string, error) {
		return "", exec.ErrNotFound
	})

	tool := Tool{Name: "yarn", InstallArgs: []string{"install"}}
	err := tool.Install(context.Background(), t.TempDir(), strings.NewReader(""), &strings.Builder{}, &strings.Builder{})
	if err == nil {
		t.Fatal("expected error when the tool is not on PATH")
	}
	if !strings.Contains(err.Error(), "yarn") {
		t.Errorf("error %q should name the tool", err)
	}
}

func TestRunStreamsOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX echo binary")
	}
	withLookPath(t, exec.LookPath)

	tool := Tool{Name: "echo", BuildArgs: []string{"built"}}
	var out strings.Builder
	if err := tool.Build(context.Background(), t.TempDir(), strings.NewReader(""), &out, &strings.Builder{}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.Contains(out.String(), "built") {
		t.Errorf("stdout = %q, want subprocess output streamed through", out.String())
	}
}

func TestRunNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on a POSIX false binary")
	}
	withLookPath(t, exec.LookPath)

	tool := Tool{Name: "false", BuildArgs: nil}
	err := tool.Build(context.Background(), t.TempDir(), strings.NewReader(""), &strings.Builder{}, &strings.Builder{})
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
}
