package synthesis

import (
	"fmt"
	"path/filepath"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/catalog"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/layout"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/manifest"
	"gopkg.in/yaml.v3"
)

// workspaceGlobFile models pnpm-workspace.yaml.
type workspaceGlobFile struct {
	Packages []string `yaml:"packages"`
}

// materializeWorkspace applies the manager's workspace shape:
//   - WorkspaceManifest: the skeleton manifest already declares workspaces,
//     nothing to do.
//   - WorkspaceLinkerFile: write the linker-mode declaration file next to the
//     manifest (yarn does not hoist the way the templates expect otherwise).
//   - WorkspaceGlobFile: the manager does not read workspace globs from the
//     manifest, so the embedded globs move into a separate glob file.
func (s *Synthesizer) materializeWorkspace(root string, mgr catalog.Manager, lay layout.Policy) error {
	switch mgr.Shape {
	case catalog.WorkspaceManifest:
		return nil

	case catalog.WorkspaceLinkerFile:
		path := filepath.Join(root, mgr.WorkspaceFile)
		return s.fs.WriteFileAtomic(path, []byte(catalog.YarnLinkerFileContent), 0o644)

	case catalog.WorkspaceGlobFile:
		return s.extractWorkspaceGlobs(root, mgr, lay)
	}
	return fmt.Errorf("unknown workspace shape %d", mgr.Shape)
}

func (s *Synthesizer) extractWorkspaceGlobs(root string, mgr catalog.Manager, lay layout.Policy) error {
	manifestPath := filepath.Join(root, lay.RootManifest())
	doc, err := manifest.Load(s.fs, manifestPath)
	if err != nil {
		return err
	}

	globs := workspaceGlobsFromManifest(doc)
	if len(globs) == 0 {
		globs = lay.WorkspaceGlobs
	}
	if len(globs) == 0 {
		// Layout without workspaces: neither field nor file is needed.
		return nil
	}

	doc.Delete("workspaces")
	if err := doc.Save(s.fs, manifestPath); err != nil {
		return err
	}

	out, err := yaml.Marshal(workspaceGlobFile{Packages: globs})
	if err != nil {
		return fmt.Errorf("failed to encode workspace globs: %w", err)
	}
	return s.fs.WriteFileAtomic(filepath.Join(root, mgr.WorkspaceFile), out, 0o644)
}

func workspaceGlobsFromManifest(doc *manifest.Document) []string {
	raw, ok := doc.Get("workspaces")
	if !ok {
		return nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	globs := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			globs = append(globs, s)
		}
	}
	return globs
}
