package synthesis

import (
	"path/filepath"
	"strings"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/catalog"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/layout"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/selection"
)

// envPreamble is the fixed block of optional tracing variables every
// generated env template starts with.
const envPreamble = `# Optional: LangSmith tracing
# LANGSMITH_TRACING=true
# LANGSMITH_API_KEY=
# LANGSMITH_PROJECT=
`

// RenderEnvTemplate unions the required environment variables of the selected
// agents, deduplicated in first-seen order across the canonical agent order,
// and renders the template: preamble, blank line, one blank-valued assignment
// per variable.
func RenderEnvTemplate(agents selection.AgentSet) string {
	var b strings.Builder
	b.WriteString(envPreamble)

	seen := map[string]bool{}
	var ordered []string
	for _, id := range agents.Selected() {
		agent, _ := catalog.AgentByID(id)
		for _, name := range agent.EnvVars {
			if seen[name] {
				continue
			}
			seen[name] = true
			ordered = append(ordered, name)
		}
	}

	if len(ordered) > 0 {
		b.WriteString("\n")
	}
	for _, name := range ordered {
		b.WriteString(name)
		b.WriteString("=\n")
	}
	return b.String()
}

// writeEnvTemplate renders and writes the env template for the selection.
func (s *Synthesizer) writeEnvTemplate(root string, sel selection.Selection, lay layout.Policy) error {
	content := RenderEnvTemplate(sel.Agents)
	return s.fs.WriteFileAtomic(filepath.Join(root, lay.EnvFile()), []byte(content), 0o644)
}
