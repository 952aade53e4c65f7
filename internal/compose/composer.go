// Package compose materializes the output tree: destination guard, monorepo
// skeleton, framework slot, and one subfolder per selected agent, in a fixed
// order. It performs filesystem writes only; all configuration rewriting
// happens afterwards in the synthesis package.
package compose

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/catalog"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/errutil"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/layout"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/selection"
)

// TemplateSource copies a named template subtree into a destination.
type TemplateSource interface {
	Copy(name, dst string) error
}

// FileSystem defines the minimal filesystem interface the composer needs.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	EnsureDirs(path string) error
	RemoveAll(path string) error
}

// Reporter receives human-readable progress. Pure side-effect sink.
type Reporter interface {
	Progress(message string)
}

// Composer orchestrates the ordered copy of template trees into the
// destination.
type Composer struct {
	templates TemplateSource
	fs        FileSystem
	reporter  Reporter
}

// New creates a Composer with injected dependencies.
func New(templates TemplateSource, fs FileSystem, reporter Reporter) *Composer {
	if templates == nil {
		panic("templates is required")
	}
	if fs == nil {
		panic("fs is required")
	}
	if reporter == nil {
		panic("reporter is required")
	}
	return &Composer{templates: templates, fs: fs, reporter: reporter}
}

// Compose builds the output tree under parentDir/<project name> and returns
// the destination root. The destination must not already exist; that check is
// the single all-or-nothing guard, and any later step failure aborts the
// remaining steps but leaves the partial tree on disk for inspection.
func (c *Composer) Compose(parentDir string, sel selection.Selection, lay layout.Policy) (string, error) {
	dest := filepath.Join(parentDir, sel.ProjectName)

	if _, err := c.fs.Stat(dest); err == nil {
		return "", fmt.Errorf("%w: %s", errutil.ErrDestinationExists, dest)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check destination %s: %w", dest, err)
	}

	c.reporter.Progress(fmt.Sprintf("Creating project in %s", dest))
	if err := c.fs.EnsureDirs(dest); err != nil {
		return "", fmt.Errorf("failed to create destination root: %w", err)
	}

	c.reporter.Progress("Copying monorepo skeleton")
	if err := c.templates.Copy(catalog.MonorepoTemplate, dest); err != nil {
		return "", fmt.Errorf("failed to copy monorepo skeleton: %w", err)
	}

	// The skeleton ships the workspace shape; drop the subtrees this layout
	// relocates elsewhere.
	for _, sub := range lay.SkeletonPrune {
		if err := c.fs.RemoveAll(filepath.Join(dest, sub)); err != nil {
			return "", fmt.Errorf("failed to prune skeleton subtree %s: %w", sub, err)
		}
	}

	webDir := filepath.Join(dest, lay.WebDir)
	if err := c.fs.EnsureDirs(webDir); err != nil {
		return "", fmt.Errorf("failed to create web directory: %w", err)
	}

	frameworkTemplate, ok := catalog.FrameworkTemplate(sel.Framework)
	if !ok {
		return "", fmt.Errorf("unknown framework %q", sel.Framework)
	}
	c.reporter.Progress(fmt.Sprintf("Copying %s web app", sel.Framework))
	if err := c.templates.Copy(frameworkTemplate, webDir); err != nil {
		return "", fmt.Errorf("failed to copy framework template: %w", err)
	}

	// Usually present already from the skeleton, but ensured.
	agentsDir := filepath.Join(dest, lay.AgentsDir)
	if err := c.fs.EnsureDirs(agentsDir); err != nil {
		return "", fmt.Errorf("failed to create agents directory: %w", err)
	}

	for _, id := range sel.Agents.Selected() {
		agent, ok := catalog.AgentByID(id)
		if !ok {
			return "", fmt.Errorf("unknown agent %q", id)
		}

		agentDir := filepath.Join(dest, lay.AgentDir(string(id)))
		if err := c.fs.EnsureDirs(agentDir); err != nil {
			return "", fmt.Errorf("failed to create %s agent directory: %w", id, err)
		}

		c.reporter.Progress(fmt.Sprintf("Adding %s agent", id))
		if err := c.templates.Copy(agent.Template, agentDir); err != nil {
			return "", fmt.Errorf("failed to copy %s agent template: %w", id, err)
		}
	}

	return dest, nil
}
