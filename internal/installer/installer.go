// Package installer runs the chosen package manager's install command inside
// the generated project. The process inherits the standard streams so the
// manager's own progress output reaches the user directly.
package installer

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/catalog"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/errutil"
)

// CommandRunner executes an external command to completion.
type CommandRunner interface {
	Run(ctx context.Context, argv []string, dir string) error
}

// OSCommandRunner implements CommandRunner using os/exec with inherited
// standard streams.
type OSCommandRunner struct{}

// NewOSCommandRunner creates a runner backed by real processes.
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// Run executes argv with the working directory set to dir.
func (r *OSCommandRunner) Run(ctx context.Context, argv []string, dir string) error {
	if len(argv) == 0 {
		return os.ErrInvalid
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Reporter receives progress output.
type Reporter interface {
	Progress(message string)
}

// Installer invokes the manager's install command in the destination root.
type Installer struct {
	runner   CommandRunner
	reporter Reporter
}

// New creates an Installer with injected dependencies.
func New(runner CommandRunner, reporter Reporter) *Installer {
	if runner == nil {
		panic("runner is required")
	}
	if reporter == nil {
		panic("reporter is required")
	}
	return &Installer{runner: runner, reporter: reporter}
}

// Install runs one synchronous install for the manager, with the working
// directory changed to dest. A failing install is reported as
// ErrInstallFailed; the caller decides whether that is fatal (it is not: the
// generated tree is complete without it).
func (i *Installer) Install(ctx context.Context, dest string, mgr catalog.Manager) error {
	i.reporter.Progress(fmt.Sprintf("Installing dependencies with %s", mgr.ID))

	if err := i.runner.Run(ctx, mgr.InstallArgs, dest); err != nil {
		return fmt.Errorf("%w: %v", errutil.ErrInstallFailed, err)
	}
	return nil
}
