package catalog

// PackageManager identifies one of the supported JS package managers.
type PackageManager string

const (
	ManagerNPM  PackageManager = "npm"
	ManagerYarn PackageManager = "yarn"
	ManagerPNPM PackageManager = "pnpm"
)

// ManagerOrder is the canonical presentation order; the first entry is the
// interactive default.
var ManagerOrder = []PackageManager{ManagerNPM, ManagerPNPM, ManagerYarn}

// WorkspaceShape describes how a manager declares its workspaces.
type WorkspaceShape int

const (
	// WorkspaceManifest: workspace globs live in the root manifest; no extra
	// file is written (npm).
	WorkspaceManifest WorkspaceShape = iota
	// WorkspaceGlobFile: workspace globs must live in a separate file and the
	// manifest's embedded globs are removed (pnpm).
	WorkspaceGlobFile
	// WorkspaceLinkerFile: workspaces stay in the manifest but a linker-mode
	// declaration file is written alongside it (yarn).
	WorkspaceLinkerFile
)

// Manager describes one package manager's configuration surface. The
// OverrideKey mapping is correctness-critical: writing a pin under the wrong
// key is a silent no-op for that ecosystem.
type Manager struct {
	ID PackageManager
	// VersionPin is the exact value written into the manifest's
	// "packageManager" field.
	VersionPin string
	// OverrideKey is the top-level manifest key this manager reads transitive
	// version pins from ("overrides" or "resolutions").
	OverrideKey string
	// InstallArgs is the install invocation, argv style.
	InstallArgs []string
	Shape       WorkspaceShape
	// WorkspaceFile and WorkspaceFileContent describe the extra file for
	// WorkspaceGlobFile / WorkspaceLinkerFile shapes.
	WorkspaceFile string
}

var managers = map[PackageManager]Manager{
	ManagerNPM: {
		ID:          ManagerNPM,
		VersionPin:  "npm@11.2.0",
		OverrideKey: "overrides",
		InstallArgs: []string{"npm", "install"},
		Shape:       WorkspaceManifest,
	},
	ManagerPNPM: {
		ID:            ManagerPNPM,
		VersionPin:    "pnpm@10.6.3",
		OverrideKey:   "resolutions",
		InstallArgs:   []string{"pnpm", "install"},
		Shape:         WorkspaceGlobFile,
		WorkspaceFile: "pnpm-workspace.yaml",
	},
	ManagerYarn: {
		ID:            ManagerYarn,
		VersionPin:    "yarn@1.22.22",
		OverrideKey:   "resolutions",
		InstallArgs:   []string{"yarn", "install"},
		Shape:         WorkspaceLinkerFile,
		WorkspaceFile: ".yarnrc.yml",
	},
}

// PinnedDependency is the shared library pinned across all workspaces via the
// manager's override key.
const (
	PinnedDependency        = "@langchain/core"
	PinnedDependencyVersion = "^0.3.42"
)

// YarnLinkerFileContent is the linker-mode declaration written for yarn.
const YarnLinkerFileContent = "nodeLinker: node-modules\n"

// ManagerByID looks up a package manager definition.
func ManagerByID(id PackageManager) (Manager, bool) {
	m, ok := managers[id]
	return m, ok
}

// IsManagerID reports whether s names a known package manager.
func IsManagerID(s string) bool {
	_, ok := managers[PackageManager(s)]
	return ok
}
