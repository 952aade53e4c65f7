package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// SuccessSummary describes what to tell the user after generation finishes.
type SuccessSummary struct {
	ProjectName    string
	Dest           string
	PackageManager string
	// InstallFailed switches the next steps to include a manual install.
	InstallFailed bool
	// Installed reports whether the auto-install ran at all.
	Installed bool
}

// RenderSummary renders the success message as terminal-friendly markdown.
// Falls back to the raw markdown if the renderer cannot be constructed.
func RenderSummary(s SuccessSummary) string {
	md := summaryMarkdown(s)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

func summaryMarkdown(s SuccessSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s is ready\n\n", s.ProjectName)
	fmt.Fprintf(&b, "Created at `%s`.\n\n", s.Dest)

	if s.InstallFailed {
		b.WriteString("Dependency install **failed**; the generated files are complete.\n\n")
	}

	b.WriteString("Next steps:\n\n")
	fmt.Fprintf(&b, "1. `cd %s`\n", s.ProjectName)
	step := 2
	if !s.Installed || s.InstallFailed {
		fmt.Fprintf(&b, "%d. `%s install`\n", step, s.PackageManager)
		step++
	}
	b.WriteString(fmt.Sprintf("%d. Fill in `.env` from `.env.example`\n", step))
	fmt.Fprintf(&b, "%d. `%s run dev`\n", step+1, s.PackageManager)

	return b.String()
}
