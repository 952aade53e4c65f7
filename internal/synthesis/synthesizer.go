// Package synthesis performs every post-copy configuration rewrite: manifest
// identity, package-manager binding, workspace files, agent dependency
// injection, graph-registry population, the environment-variable template,
// and ignore files. Each step is an independent transformation of one
// artifact; a failing step is recorded and reported, and its siblings still
// run.
package synthesis

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/catalog"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/layout"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/manifest"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/selection"
)

// FileSystem defines the minimal filesystem interface the synthesizer needs.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
}

// Reporter receives progress and non-fatal warnings.
type Reporter interface {
	Progress(message string)
	Warn(message string)
}

// Synthesizer rewrites the materialized tree in place.
type Synthesizer struct {
	fs       FileSystem
	reporter Reporter
}

// New creates a Synthesizer with injected dependencies.
func New(fs FileSystem, reporter Reporter) *Synthesizer {
	if fs == nil {
		panic("fs is required")
	}
	if reporter == nil {
		panic("reporter is required")
	}
	return &Synthesizer{fs: fs, reporter: reporter}
}

// Run applies every synthesis step to the tree rooted at root and returns the
// per-step report. Steps run in a fixed order but do not depend on each
// other's output; a failure is warned about and the run continues.
func (s *Synthesizer) Run(root string, sel selection.Selection, lay layout.Policy) *Report {
	mgr, ok := catalog.ManagerByID(sel.PackageManager)
	if !ok {
		// Unreachable for resolver-produced selections; fail every
		// manager-dependent step through the report rather than panicking.
		err := fmt.Errorf("unknown package manager %q", sel.PackageManager)
		report := &Report{}
		report.add("package-manager binding", err)
		s.reporter.Warn(err.Error())
		return report
	}

	report := &Report{}
	s.reporter.Progress("Writing project configuration")

	steps := []struct {
		name string
		run  func() error
	}{
		{"manifest identity", func() error { return s.propagateIdentity(root, sel, lay) }},
		{"package-manager binding", func() error { return s.bindManager(root, mgr, lay) }},
		{"workspace file", func() error { return s.materializeWorkspace(root, mgr, lay) }},
		{"agent dependencies", func() error { return s.injectAgentDependencies(root, sel, lay) }},
		{"graph registry", func() error { return s.populateGraphRegistry(root, sel, lay) }},
		{"env template", func() error { return s.writeEnvTemplate(root, sel, lay) }},
		{"ignore files", func() error { return s.writeIgnoreFiles(root, sel, lay) }},
	}

	for _, step := range steps {
		err := step.run()
		report.add(step.name, err)
		if err != nil {
			s.reporter.Warn(fmt.Sprintf("%s: %v (continuing)", step.name, err))
		}
	}

	return report
}

// propagateIdentity sets the name field in the root manifest and, where the
// layout carries per-package manifests, in the web and agents manifests.
func (s *Synthesizer) propagateIdentity(root string, sel selection.Selection, lay layout.Policy) error {
	if err := s.setManifestName(filepath.Join(root, lay.RootManifest()), sel.ProjectName); err != nil {
		return err
	}

	if web := lay.WebManifest(); web != "" {
		if err := s.setManifestName(filepath.Join(root, web), sel.ProjectName+"-web"); err != nil {
			return err
		}
	}
	if lay.PerPackageManifests {
		if err := s.setManifestName(filepath.Join(root, lay.AgentsManifest()), sel.ProjectName+"-agents"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Synthesizer) setManifestName(path, name string) error {
	// A manifest the template didn't ship is not an error.
	if _, err := s.fs.Stat(path); os.IsNotExist(err) {
		return nil
	}

	doc, err := manifest.Load(s.fs, path)
	if err != nil {
		return err
	}
	doc.Set("name", name)
	return doc.Save(s.fs, path)
}

// bindManager writes the packageManager pin and the shared-library version
// pin under the manager's override key. The override key differs per
// ecosystem; writing the wrong one is a silent no-op, which is why the key
// comes from the catalog table.
func (s *Synthesizer) bindManager(root string, mgr catalog.Manager, lay layout.Policy) error {
	path := filepath.Join(root, lay.RootManifest())
	doc, err := manifest.Load(s.fs, path)
	if err != nil {
		return err
	}

	doc.Set("packageManager", mgr.VersionPin)
	pin := map[string]string{catalog.PinnedDependency: catalog.PinnedDependencyVersion}
	if err := doc.MergeMap(mgr.OverrideKey, pin, true); err != nil {
		return err
	}
	return doc.Save(s.fs, path)
}

// injectAgentDependencies unions each selected agent's dependency table into
// the agents manifest. First writer wins: an already-set dependency keeps its
// existing version range, so template-provided entries survive injection.
// The shipped agent tables are disjoint, so the tie-break never fires on
// catalog data.
func (s *Synthesizer) injectAgentDependencies(root string, sel selection.Selection, lay layout.Policy) error {
	ids := sel.Agents.Selected()
	if len(ids) == 0 {
		return nil
	}

	path := filepath.Join(root, lay.AgentsManifest())
	doc, err := manifest.Load(s.fs, path)
	if err != nil {
		return err
	}

	for _, id := range ids {
		agent, _ := catalog.AgentByID(id)
		if err := doc.MergeMap("dependencies", agent.Dependencies, false); err != nil {
			return err
		}
	}
	return doc.Save(s.fs, path)
}

// populateGraphRegistry adds each selected agent's graph entries to the
// registry's graphs mapping. Entries are additive; nothing already present
// is removed.
func (s *Synthesizer) populateGraphRegistry(root string, sel selection.Selection, lay layout.Policy) error {
	path := filepath.Join(root, lay.RegistryFile)

	doc, err := manifest.Load(s.fs, path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		// Registry not shipped by the skeleton: start one.
		doc = manifest.New()
	}

	entries := map[string]string{}
	for _, id := range sel.Agents.Selected() {
		agent, _ := catalog.AgentByID(id)
		for _, g := range agent.Graphs {
			entries[g.ID] = lay.GraphTarget(g.Target)
		}
	}
	if err := doc.MergeMap("graphs", entries, true); err != nil {
		return err
	}
	return doc.Save(s.fs, path)
}
