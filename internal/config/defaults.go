package config

// Config holds all generator configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Defaults DefaultsConfig `json:"defaults"`
	Output   OutputConfig   `json:"output"`
}

// DefaultsConfig supplies the default answer for each wizard prompt.
type DefaultsConfig struct {
	ProjectName    string `json:"project_name"`    // Default: "agent-chat-app"
	PackageManager string `json:"package_manager"` // Default: "npm"
	AutoInstall    bool   `json:"auto_install"`    // Default: true
	Framework      string `json:"framework"`       // Default: "nextjs"
	AllAgents      bool   `json:"all_agents"`      // Default: false
	InitGit        bool   `json:"init_git"`        // Default: true
}

// OutputConfig controls how the generated tree is laid out.
type OutputConfig struct {
	// Layout selects the output layout policy ("workspace" or "flat").
	Layout string `json:"layout"` // Default: "workspace"
	// TemplatesDir overrides the bundled templates location. Empty means the
	// directory next to the executable (or the env override).
	TemplatesDir string `json:"templates_dir"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			ProjectName:    "agent-chat-app",
			PackageManager: "npm",
			AutoInstall:    true,
			Framework:      "nextjs",
			AllAgents:      false,
			InitGit:        true,
		},
		Output: OutputConfig{
			Layout: "workspace",
		},
	}
}
