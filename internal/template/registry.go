// Package template maps symbolic template names to the bundled template
// subtrees and provides the copy operation used by the directory composer.
package template

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/errutil"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/fsutil"
)

// TemplatesDirEnv overrides the templates root directory when set. Used by
// tests and by installations that relocate the bundled templates.
const TemplatesDirEnv = "CREATE_AGENT_CHAT_APP_TEMPLATES"

// templateDirs maps a symbolic template name to its subdirectory under the
// templates root.
var templateDirs = map[string]string{
	"monorepo":        "monorepo",
	"web-nextjs":      filepath.Join("web", "nextjs"),
	"web-vite":        filepath.Join("web", "vite"),
	"react-agent":     filepath.Join("agents", "react-agent"),
	"memory-agent":    filepath.Join("agents", "memory-agent"),
	"research-agent":  filepath.Join("agents", "research-agent"),
	"retrieval-agent": filepath.Join("agents", "retrieval-agent"),
}

// Registry resolves template names to filesystem locations and copies them.
type Registry struct {
	root string
}

// NewRegistry creates a registry rooted at the given templates directory.
func NewRegistry(root string) *Registry {
	return &Registry{root: root}
}

// DefaultRoot resolves the templates root: the TemplatesDirEnv override if
// set, otherwise the "templates" directory next to the running executable.
func DefaultRoot() (string, error) {
	if dir := os.Getenv(TemplatesDirEnv); dir != "" {
		return dir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), "templates"), nil
}

// Resolve returns the on-disk directory for a template name.
func (r *Registry) Resolve(name string) (string, error) {
	sub, ok := templateDirs[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", errutil.ErrTemplateNotFound, name)
	}

	dir := filepath.Join(r.root, sub)
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("%w: %s (looked in %s)", errutil.ErrTemplateNotFound, name, dir)
	}
	return dir, nil
}

// Copy clones the named template subtree into dst, including dotfiles and
// dereferencing symlinks.
func (r *Registry) Copy(name, dst string) error {
	src, err := r.Resolve(name)
	if err != nil {
		return err
	}
	return fsutil.CopyTree(src, dst)
}
