// Package layout defines the output-tree layout policies. A policy fixes
// where each template slot lands and which manifests exist, so the composer
// and synthesizer stay layout-agnostic.
package layout

import (
	"path"
	"path/filepath"
	"strings"
)

// Policy describes one versioned output layout.
type Policy struct {
	Name string

	// WebDir and AgentsDir are the slot subpaths, relative to the
	// destination root.
	WebDir    string
	AgentsDir string

	// PerPackageManifests reports whether the web and agents slots carry
	// their own package manifests (workspace layout) or everything lives in
	// the root manifest (flat layout).
	PerPackageManifests bool

	// RegistryFile is the graph-registry path relative to the destination
	// root.
	RegistryFile string

	// WorkspaceGlobs are the default workspace globs for this layout, used
	// when the skeleton manifest does not declare its own. Empty for layouts
	// without workspaces.
	WorkspaceGlobs []string

	// SkeletonPrune lists skeleton subtrees this layout does not use, removed
	// after the skeleton copy. The bundled skeleton carries the workspace
	// shape; other layouts prune what they relocate.
	SkeletonPrune []string
}

// Workspace is the default layout: an apps/ monorepo with per-package
// manifests and the graph registry inside the agents package.
var Workspace = Policy{
	Name:                "workspace",
	WebDir:              filepath.Join("apps", "web"),
	AgentsDir:           filepath.Join("apps", "agents"),
	PerPackageManifests: true,
	RegistryFile:        filepath.Join("apps", "agents", "langgraph.json"),
	WorkspaceGlobs:      []string{"apps/*"},
}

// Flat is the legacy single-manifest layout.
var Flat = Policy{
	Name:                "flat",
	WebDir:              "web",
	AgentsDir:           "agents",
	PerPackageManifests: false,
	RegistryFile:        "langgraph.json",
	SkeletonPrune:       []string{"apps"},
}

// ByName resolves a layout policy by name.
func ByName(name string) (Policy, bool) {
	switch name {
	case Workspace.Name:
		return Workspace, true
	case Flat.Name:
		return Flat, true
	}
	return Policy{}, false
}

// RootManifest is the root package manifest path, relative to the root.
func (p Policy) RootManifest() string {
	return "package.json"
}

// WebManifest is the web package manifest path, or "" when the layout has no
// per-package manifests.
func (p Policy) WebManifest() string {
	if !p.PerPackageManifests {
		return ""
	}
	return filepath.Join(p.WebDir, "package.json")
}

// AgentsManifest is the manifest agent dependencies are injected into: the
// agents package manifest when one exists, the root manifest otherwise.
func (p Policy) AgentsManifest() string {
	if !p.PerPackageManifests {
		return p.RootManifest()
	}
	return filepath.Join(p.AgentsDir, "package.json")
}

// AgentDir is the destination subfolder for one agent, relative to the root.
func (p Policy) AgentDir(agent string) string {
	return filepath.Join(p.AgentsDir, agent)
}

// GraphTarget rewrites a graph module target, expressed relative to the
// agents directory, to be relative to the registry file's directory. The two
// coincide in the workspace layout; in layouts where the registry sits above
// the agents directory the target gains the connecting path prefix.
func (p Policy) GraphTarget(target string) string {
	rel, err := filepath.Rel(filepath.Dir(p.RegistryFile), p.AgentsDir)
	if err != nil || rel == "." {
		return target
	}
	return "./" + path.Join(filepath.ToSlash(rel), strings.TrimPrefix(target, "./"))
}

// EnvFile is the environment-variable template path, relative to the root.
func (p Policy) EnvFile() string {
	return ".env.example"
}

// WebIgnoreFile is the framework-scoped ignore file path, relative to the
// root.
func (p Policy) WebIgnoreFile() string {
	return filepath.Join(p.WebDir, ".gitignore")
}
