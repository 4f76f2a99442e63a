package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/stackforge-labs/stackforge/internal/branding"
	"github.com/stackforge-labs/stackforge/internal/copier"
	"github.com/stackforge-labs/stackforge/internal/manifest"
	"github.com/stackforge-labs/stackforge/internal/pkgtool"
	"github.com/stackforge-labs/stackforge/internal/preflight"
	"github.com/stackforge-labs/stackforge/internal/prompt"
	"github.com/stackforge-labs/stackforge/internal/readme"
)

// Stage identifies how far a scaffold run progressed. Stages advance
// strictly forward and are never revisited; a run that returns an error
// lands on the terminal StageFailed.
type Stage string

const (
	StageStart           Stage = "start"
	StageGuardChecked    Stage = "guard-checked"
	StageNamePrompted    Stage = "name-prompted"
	StageTreeCopied      Stage = "tree-copied"
	StageAuxFilesCopied  Stage = "aux-files-copied"
	StageManifestWritten Stage = "manifest-written"
	StageReadmeWritten   Stage = "readme-written"
	StageBuildAttempted  Stage = "build-attempted"
	StageDone            Stage = "done"
	StageFailed          Stage = "failed"
)

// Options configures a scaffold run. In/Out/Err default to the standard
// streams; Template defaults to the bundled template.
type Options struct {
	Dir      string // destination directory (the invocation working directory)
	Template fs.FS  // template root containing TreeDir and auxiliary files

	In  io.Reader
	Out io.Writer
	Err io.Writer

	PreferredTool string // package_manager config override, may be empty
	SkipInstall   bool   // skip the install and build subprocess steps

	Context context.Context
}

// Result reports what a scaffold run produced. BuildWarning carries the
// degraded-success case: the scaffold itself succeeded but the install or
// build subprocess did not.
type Result struct {
	ProjectName  string
	Dir          string
	Copied       []string // template files mirrored, slash-separated rel paths
	Warnings     []string // non-fatal issues (e.g., manifest validation)
	BuildWarning string   // set when install/build failed; empty on full success
	Stage        Stage
}

func (o *Options) fillDefaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Context == nil {
		o.Context = context.Background()
	}
}

// Run executes the scaffold sequence in opts.Dir: preflight checks, the
// project-name prompt, template replication, auxiliary file copies, manifest
// and README generation, then the install and build subprocesses.
//
// A nil error means the scaffold succeeded; check Result.BuildWarning for a
// failed build step. A non-nil error aborts remaining steps and may leave the
// destination partially populated — no rollback is attempted.
func Run(opts Options) (*Result, error) {
	opts.fillDefaults()

	res := &Result{Dir: opts.Dir, Stage: StageStart}

	// Any step failure lands on the terminal failed state and aborts the
	// remaining steps.
	fail := func(err error) (*Result, error) {
		res.Stage = StageFailed
		return res, err
	}

	// Preflight: both checks run before any prompting or mutation.
	safe, err := preflight.DestinationIsSafe(opts.Dir)
	if err != nil {
		return fail(err)
	}
	if !safe {
		return fail(fmt.Errorf("directory %s is not empty; run %s in an empty directory", opts.Dir, branding.CLIName()))
	}
	if err := preflight.TemplateExists(opts.Template, TreeDir); err != nil {
		return fail(fmt.Errorf("broken installation (please reinstall %s): %w", branding.CLIName(), err))
	}
	res.Stage = StageGuardChecked

	// Ask for the project name; the directory base name is the fallback.
	asker := &prompt.Asker{In: opts.In, Out: opts.Out}
	answer, err := asker.Ask(fmt.Sprintf("Project name (%s)", filepath.Base(opts.Dir)))
	if err != nil {
		return fail(err)
	}
	res.ProjectName = prompt.ResolveName(answer, opts.Dir)
	res.Stage = StageNamePrompted

	// Mirror the template tree.
	tree, err := fs.Sub(opts.Template, TreeDir)
	if err != nil {
		return fail(fmt.Errorf("opening template tree: %w", err))
	}
	err = copier.Replicate(tree, opts.Dir, func(rel string) {
		res.Copied = append(res.Copied, rel)
		fmt.Fprintf(opts.Out, "  created %s\n", rel)
	})
	if err != nil {
		return fail(err)
	}
	res.Stage = StageTreeCopied

	// Auxiliary top-level files; absent ones are skipped silently.
	for _, aux := range auxFiles {
		err := copier.CopyFile(opts.Template, aux.Src, filepath.Join(opts.Dir, aux.Dst))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fail(err)
		}
		fmt.Fprintf(opts.Out, "  created %s\n", aux.Dst)
	}
	res.Stage = StageAuxFilesCopied

	// Generate and write the manifest.
	pkg := manifest.Build(res.ProjectName)
	data, err := pkg.Encode()
	if err != nil {
		return fail(err)
	}
	if err := os.WriteFile(filepath.Join(opts.Dir, manifest.FileName), data, 0644); err != nil {
		return fail(fmt.Errorf("writing %s: %w", manifest.FileName, err))
	}
	fmt.Fprintf(opts.Out, "  created %s\n", manifest.FileName)
	res.Stage = StageManifestWritten

	// Validate what was written; issues are warnings, not failures.
	res.Warnings = append(res.Warnings, validateManifest(pkg, data)...)

	// Generate the README, overwriting any copy from the template.
	doc := readme.Build(res.ProjectName, opts.Dir)
	if err := os.WriteFile(filepath.Join(opts.Dir, readme.FileName), []byte(doc), 0644); err != nil {
		return fail(fmt.Errorf("writing %s: %w", readme.FileName, err))
	}
	fmt.Fprintf(opts.Out, "  created %s\n", readme.FileName)
	res.Stage = StageReadmeWritten

	// Install and build. Failures here downgrade to a warning: the scaffold
	// is complete and the user can recover manually.
	if !opts.SkipInstall {
		res.BuildWarning = runBuild(opts, res.Dir)
	}
	res.Stage = StageBuildAttempted

	for _, w := range res.Warnings {
		fmt.Fprintf(opts.Err, "warning: %s\n", w)
	}
	if res.BuildWarning != "" {
		fmt.Fprintf(opts.Err, "warning: %s\n", res.BuildWarning)
	}

	res.Stage = StageDone
	return res, nil
}

// validateManifest checks a descriptor and its serialized form: every
// declared dependency range must parse as a semver constraint, and the
// written bytes must satisfy the manifest schema. Problems come back as
// warning strings.
func validateManifest(pkg *manifest.PackageJSON, data []byte) []string {
	var warnings []string

	if err := pkg.CheckRanges(); err != nil {
		warnings = append(warnings, err.Error())
	}

	if valResult, valErr := manifest.Validate(data); valErr != nil {
		warnings = append(warnings, fmt.Sprintf("could not validate %s: %v", manifest.FileName, valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			warnings = append(warnings, msg)
		}
	}

	return warnings
}

// runBuild runs the dependency-install and build subprocesses, returning a
// warning message on failure and "" on success.
func runBuild(opts Options, dir string) string {
	tool := pkgtool.Resolve(opts.PreferredTool)

	fmt.Fprintf(opts.Out, "\nInstalling dependencies with %s...\n", tool.Name)
	if err := tool.Install(opts.Context, dir, opts.In, opts.Out, opts.Err); err != nil {
		return fmt.Sprintf("dependency install failed (%v); run `%s install` manually", err, tool.Name)
	}

	fmt.Fprintf(opts.Out, "Building...\n")
	if err := tool.Build(opts.Context, dir, opts.In, opts.Out, opts.Err); err != nil {
		return fmt.Sprintf("build failed (%v); fix the reported errors and re-run the build", err)
	}

	return ""
}
