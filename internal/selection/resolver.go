package selection

import (
	"fmt"
	"strings"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/catalog"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/errutil"
	"github.com/mitchellh/mapstructure"
)

// RawAnswers is the untyped answer record produced by the wizard (or by flag
// parsing in non-interactive mode). Pointer fields distinguish "not answered"
// from an explicit false, which matters for the all-agents master toggle.
type RawAnswers struct {
	ProjectName    string          `mapstructure:"project_name"`
	PackageManager string          `mapstructure:"package_manager"`
	AutoInstall    *bool           `mapstructure:"auto_install"`
	Framework      string          `mapstructure:"framework"`
	AllAgents      *bool           `mapstructure:"all_agents"`
	Agents         map[string]bool `mapstructure:"agents"`
	InitGit        *bool           `mapstructure:"init_git"`
}

// Defaults supplies the values used for unanswered prompts.
type Defaults struct {
	ProjectName    string
	PackageManager catalog.PackageManager
	AutoInstall    bool
	Framework      catalog.Framework
	InitGit        bool
}

// Resolver turns raw answers into a canonical Selection.
type Resolver struct {
	defaults Defaults
}

// NewResolver creates a resolver with the given defaults.
func NewResolver(defaults Defaults) *Resolver {
	return &Resolver{defaults: defaults}
}

// Decode converts an untyped answer map (as emitted by the wizard) into a
// RawAnswers record.
func Decode(answers map[string]any) (RawAnswers, error) {
	var raw RawAnswers
	if err := mapstructure.Decode(answers, &raw); err != nil {
		return RawAnswers{}, fmt.Errorf("failed to decode answers: %w", err)
	}
	return raw, nil
}

// Resolve produces a canonical Selection from raw answers. The all-agents
// master toggle expands into four explicit booleans; individual agent answers
// default to false when the toggle was declined. Package manager and
// framework values are constrained to their enumerations upstream, so
// unrecognized values fall back to the defaults rather than erroring.
func (r *Resolver) Resolve(raw RawAnswers) (Selection, error) {
	sel := Selection{
		ProjectName:    strings.TrimSpace(raw.ProjectName),
		PackageManager: r.defaults.PackageManager,
		AutoInstall:    r.defaults.AutoInstall,
		Framework:      r.defaults.Framework,
		InitGit:        r.defaults.InitGit,
	}

	if sel.ProjectName == "" {
		sel.ProjectName = r.defaults.ProjectName
	}
	if err := validateProjectName(sel.ProjectName); err != nil {
		return Selection{}, err
	}

	if catalog.IsManagerID(raw.PackageManager) {
		sel.PackageManager = catalog.PackageManager(raw.PackageManager)
	}
	if catalog.IsFrameworkID(raw.Framework) {
		sel.Framework = catalog.Framework(raw.Framework)
	}
	if raw.AutoInstall != nil {
		sel.AutoInstall = *raw.AutoInstall
	}
	if raw.InitGit != nil {
		sel.InitGit = *raw.InitGit
	}

	if raw.AllAgents != nil && *raw.AllAgents {
		sel.Agents = AllAgents
		return sel, nil
	}

	// Toggle declined or never asked: each agent is an independent boolean
	// with an explicit false default.
	sel.Agents = AgentSet{
		React:     raw.Agents[string(catalog.AgentReact)],
		Memory:    raw.Agents[string(catalog.AgentMemory)],
		Research:  raw.Agents[string(catalog.AgentResearch)],
		Retrieval: raw.Agents[string(catalog.AgentRetrieval)],
	}
	return sel, nil
}

// validateProjectName rejects names that cannot form a single safe path
// segment under the working directory.
func validateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: %w", errutil.ErrInvalidSelection, errutil.ErrEmptyProjectName)
	}
	if name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %w (%q)", errutil.ErrInvalidSelection, errutil.ErrUnsafeProjectName, name)
	}
	return nil
}
