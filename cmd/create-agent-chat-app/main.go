// Package main provides the create-agent-chat-app command: an interactive
// generator that materializes an agent chat monorepo from bundled templates.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/catalog"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/compose"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/config"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/errutil"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/fsutil"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/gitutil"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/installer"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/layout"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/selection"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/synthesis"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/template"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/ui"
)

// cliFlags holds the non-interactive overrides.
type cliFlags struct {
	yes            bool
	projectName    string
	packageManager string
	framework      string
	noInstall      bool
	allAgents      bool
	agents         string
	noGit          bool
}

func parseFlags(args []string) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet("create-agent-chat-app", flag.ContinueOnError)
	fs.BoolVar(&f.yes, "yes", false, "skip the wizard and accept defaults (plus any flag overrides)")
	fs.StringVar(&f.projectName, "name", "", "project name")
	fs.StringVar(&f.packageManager, "package-manager", "", "package manager (npm, pnpm, yarn)")
	fs.StringVar(&f.framework, "framework", "", "web framework (nextjs, vite)")
	fs.BoolVar(&f.noInstall, "no-install", false, "skip dependency install")
	fs.BoolVar(&f.allAgents, "all-agents", false, "include every prebuilt agent")
	fs.StringVar(&f.agents, "agents", "", "comma-separated agent list (react,memory,research,retrieval)")
	fs.BoolVar(&f.noGit, "no-git", false, "skip git repository initialization")

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	return f, nil
}

// answersFromFlags builds the raw answer map without the wizard.
func answersFromFlags(f cliFlags) map[string]any {
	agents := map[string]bool{}
	for _, name := range strings.Split(f.agents, ",") {
		name = strings.TrimSpace(name)
		if catalog.IsAgentID(name) {
			agents[name] = true
		}
	}

	return map[string]any{
		"project_name":    f.projectName,
		"package_manager": f.packageManager,
		"auto_install":    !f.noInstall,
		"framework":       f.framework,
		"all_agents":      f.allAgents,
		"agents":          agents,
		"init_git":        !f.noGit,
	}
}

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	reporter := ui.NewConsoleReporter(os.Stdout)

	flags, err := parseFlags(args)
	if err != nil {
		return err
	}

	// Load configuration (defaults + ~/.config/create-agent-chat-app/config.json)
	cfg, err := config.Load()
	if err != nil {
		reporter.Warn(fmt.Sprintf("failed to load config: %v", err))
		reporter.Warn("using default configuration")
		cfg = config.DefaultConfig()
	}

	// === ANSWER COLLECTION ===
	var answers map[string]any
	if flags.yes {
		answers = answersFromFlags(flags)
	} else {
		answers, err = ui.RunWizard(cfg)
		if err != nil {
			if errors.Is(err, ui.ErrWizardAborted) {
				reporter.Warn("aborted")
				return err
			}
			reporter.Error(err.Error())
			return err
		}
	}

	raw, err := selection.Decode(answers)
	if err != nil {
		reporter.Error(err.Error())
		return err
	}

	resolver := selection.NewResolver(selection.Defaults{
		ProjectName:    cfg.Defaults.ProjectName,
		PackageManager: catalog.PackageManager(cfg.Defaults.PackageManager),
		AutoInstall:    cfg.Defaults.AutoInstall,
		Framework:      catalog.Framework(cfg.Defaults.Framework),
		InitGit:        cfg.Defaults.InitGit,
	})
	sel, err := resolver.Resolve(raw)
	if err != nil {
		reporter.Error(err.Error())
		return err
	}

	lay, ok := layout.ByName(cfg.Output.Layout)
	if !ok {
		// Validated at load time; fall back defensively anyway.
		lay = layout.Workspace
	}

	// === TEMPLATE RESOLUTION ===
	templatesRoot := cfg.Output.TemplatesDir
	if templatesRoot == "" {
		templatesRoot, err = template.DefaultRoot()
		if err != nil {
			reporter.Error(err.Error())
			return err
		}
	}

	osFS := fsutil.NewOSFileSystem()
	registry := template.NewRegistry(templatesRoot)

	cwd, err := os.Getwd()
	if err != nil {
		reporter.Error(fmt.Sprintf("failed to get working directory: %v", err))
		return err
	}

	// === COMPOSITION ===
	composer := compose.New(registry, osFS, reporter)
	dest, err := composer.Compose(cwd, sel, lay)
	if err != nil {
		if errors.Is(err, errutil.ErrDestinationExists) {
			reporter.Error(err.Error())
			return err
		}
		reporter.Error(fmt.Sprintf("generation failed: %v", err))
		reporter.Warn("a partial tree may remain for inspection")
		return err
	}

	// === SYNTHESIS (best-effort per step) ===
	synthesizer := synthesis.New(osFS, reporter)
	report := synthesizer.Run(dest, sel, lay)
	for _, step := range report.Failed() {
		reporter.Warn(fmt.Sprintf("%s left in its templated state: %v", step.Name, step.Err))
	}

	if sel.InitGit {
		if err := gitutil.InitRepo(dest); err != nil {
			reporter.Warn(err.Error())
		}
	}

	// === OPTIONAL INSTALL ===
	mgr, _ := catalog.ManagerByID(sel.PackageManager)
	installFailed := false
	if sel.AutoInstall {
		inst := installer.New(installer.NewOSCommandRunner(), reporter)
		if err := inst.Install(ctx, dest, mgr); err != nil {
			installFailed = true
			reporter.Warn(err.Error())
		}
	}

	fmt.Print(ui.RenderSummary(ui.SuccessSummary{
		ProjectName:    sel.ProjectName,
		Dest:           dest,
		PackageManager: string(sel.PackageManager),
		Installed:      sel.AutoInstall,
		InstallFailed:  installFailed,
	}))
	return nil
}
