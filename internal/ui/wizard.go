// Package ui provides the interactive wizard that collects raw answers, the
// console reporter, and the rendered success summary. The wizard only
// collects; all normalization happens in the selection resolver.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/catalog"
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/config"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrWizardAborted is returned when the user cancels the wizard.
var ErrWizardAborted = errors.New("wizard aborted")

type promptKind int

const (
	promptText promptKind = iota
	promptChoice
	promptConfirm
)

// prompt is one wizard question. skip (optional) hides the question based on
// earlier answers; the all-agents master toggle suppresses the per-agent
// questions this way.
type prompt struct {
	key           string
	label         string
	kind          promptKind
	options       []string
	defaultText   string
	defaultChoice int
	defaultBool   bool
	skip          func(answers map[string]any) bool
}

type wizardModel struct {
	prompts []prompt
	idx     int
	answers map[string]any
	agents  map[string]bool

	input   textinput.Model
	choice  int
	confirm bool

	done    bool
	aborted bool
}

func newWizardModel(prompts []prompt) wizardModel {
	m := wizardModel{
		prompts: prompts,
		answers: map[string]any{},
		agents:  map[string]bool{},
	}
	m.enterPrompt()
	return m
}

func (m *wizardModel) current() prompt {
	return m.prompts[m.idx]
}

// enterPrompt initializes the per-kind state for the prompt at idx.
func (m *wizardModel) enterPrompt() {
	if m.idx >= len(m.prompts) {
		return
	}
	p := m.current()
	switch p.kind {
	case promptText:
		ti := textinput.New()
		ti.Placeholder = p.defaultText
		ti.Focus()
		m.input = ti
	case promptChoice:
		m.choice = p.defaultChoice
	case promptConfirm:
		m.confirm = p.defaultBool
	}
}

// commit stores the answer for the current prompt and advances, skipping
// suppressed questions.
func (m *wizardModel) commit(value any) {
	p := m.current()
	if agent, ok := strings.CutPrefix(p.key, "agent:"); ok {
		m.agents[agent] = value.(bool)
	} else {
		m.answers[p.key] = value
	}

	m.idx++
	for m.idx < len(m.prompts) {
		next := m.prompts[m.idx]
		if next.skip == nil || !next.skip(m.answers) {
			break
		}
		m.idx++
	}

	if m.idx >= len(m.prompts) {
		m.done = true
		return
	}
	m.enterPrompt()
}

// Answers assembles the raw answer map in the shape selection.Decode expects.
func (m wizardModel) Answers() map[string]any {
	out := make(map[string]any, len(m.answers)+1)
	for k, v := range m.answers {
		out[k] = v
	}
	out["agents"] = m.agents
	return out
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}

	// Keys already queued when the final prompt committed have nothing to
	// answer.
	if m.done || m.idx >= len(m.prompts) {
		return m, nil
	}

	p := m.current()
	switch p.kind {
	case promptText:
		if keyMsg.String() == "enter" {
			m.commit(strings.TrimSpace(m.input.Value()))
			if m.done {
				return m, tea.Quit
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case promptChoice:
		switch keyMsg.String() {
		case "up", "k":
			if m.choice > 0 {
				m.choice--
			}
		case "down", "j":
			if m.choice < len(p.options)-1 {
				m.choice++
			}
		case "enter":
			m.commit(p.options[m.choice])
			if m.done {
				return m, tea.Quit
			}
		}
		return m, nil

	case promptConfirm:
		switch keyMsg.String() {
		case "y", "Y":
			m.commit(true)
		case "n", "N":
			m.commit(false)
		case "left", "right", "h", "l", "tab":
			m.confirm = !m.confirm
		case "enter":
			m.commit(m.confirm)
		}
		if m.done {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

func (m wizardModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("create-agent-chat-app"))
	b.WriteString("\n\n")

	// Answered questions stay visible for context.
	for i := 0; i < m.idx && i < len(m.prompts); i++ {
		p := m.prompts[i]
		value, ok := m.answerFor(p)
		if !ok {
			continue // was skipped
		}
		b.WriteString(AnsweredStyle.Render("✔ " + p.label + " "))
		b.WriteString(AnswerStyle.Render(value))
		b.WriteString("\n")
	}

	if m.done || m.aborted || m.idx >= len(m.prompts) {
		return b.String()
	}

	p := m.current()
	b.WriteString(PromptStyle.Render("? " + p.label))
	b.WriteString("\n")

	switch p.kind {
	case promptText:
		b.WriteString("  " + m.input.View() + "\n")
		b.WriteString(HintStyle.Render("  enter to accept"))
	case promptChoice:
		for i, opt := range p.options {
			if i == m.choice {
				b.WriteString(CursorStyle.Render("  ❯ "+opt) + "\n")
			} else {
				b.WriteString("    " + opt + "\n")
			}
		}
		b.WriteString(HintStyle.Render("  ↑/↓ to move, enter to select"))
	case promptConfirm:
		yes, no := "yes", "no"
		if m.confirm {
			yes = CursorStyle.Render("❯ yes")
		} else {
			no = CursorStyle.Render("❯ no")
		}
		fmt.Fprintf(&b, "  %s  %s\n", yes, no)
		b.WriteString(HintStyle.Render("  y/n, enter to accept"))
	}

	b.WriteString("\n")
	return b.String()
}

// answerFor formats an already-given answer for display.
func (m wizardModel) answerFor(p prompt) (string, bool) {
	if agent, ok := strings.CutPrefix(p.key, "agent:"); ok {
		v, answered := m.agents[agent]
		return formatBool(v), answered
	}

	v, answered := m.answers[p.key]
	if !answered {
		return "", false
	}
	switch val := v.(type) {
	case bool:
		return formatBool(val), true
	case string:
		if val == "" {
			return p.defaultText, true
		}
		return val, true
	}
	return fmt.Sprintf("%v", v), true
}

func formatBool(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// buildPrompts assembles the fixed question sequence from the configured
// defaults and the catalog option tables.
func buildPrompts(cfg *config.Config) []prompt {
	managerOptions := make([]string, len(catalog.ManagerOrder))
	managerDefault := 0
	for i, id := range catalog.ManagerOrder {
		managerOptions[i] = string(id)
		if string(id) == cfg.Defaults.PackageManager {
			managerDefault = i
		}
	}

	frameworkOptions := make([]string, len(catalog.FrameworkOrder))
	frameworkDefault := 0
	for i, id := range catalog.FrameworkOrder {
		frameworkOptions[i] = string(id)
		if string(id) == cfg.Defaults.Framework {
			frameworkDefault = i
		}
	}

	prompts := []prompt{
		{
			key:         "project_name",
			label:       "Project name?",
			kind:        promptText,
			defaultText: cfg.Defaults.ProjectName,
		},
		{
			key:           "package_manager",
			label:         "Which package manager?",
			kind:          promptChoice,
			options:       managerOptions,
			defaultChoice: managerDefault,
		},
		{
			key:         "auto_install",
			label:       "Install dependencies after generating?",
			kind:        promptConfirm,
			defaultBool: cfg.Defaults.AutoInstall,
		},
		{
			key:           "framework",
			label:         "Which web framework?",
			kind:          promptChoice,
			options:       frameworkOptions,
			defaultChoice: frameworkDefault,
		},
		{
			key:         "all_agents",
			label:       "Include all prebuilt agents?",
			kind:        promptConfirm,
			defaultBool: cfg.Defaults.AllAgents,
		},
	}

	skipWhenAll := func(answers map[string]any) bool {
		all, _ := answers["all_agents"].(bool)
		return all
	}
	for _, id := range catalog.AgentOrder {
		prompts = append(prompts, prompt{
			key:   "agent:" + string(id),
			label: fmt.Sprintf("Include the %s agent?", id),
			kind:  promptConfirm,
			skip:  skipWhenAll,
		})
	}

	prompts = append(prompts, prompt{
		key:         "init_git",
		label:       "Initialize a git repository?",
		kind:        promptConfirm,
		defaultBool: cfg.Defaults.InitGit,
	})

	return prompts
}

// RunWizard runs the interactive question sequence and returns the raw
// answer map. Returns ErrWizardAborted if the user cancels.
func RunWizard(cfg *config.Config) (map[string]any, error) {
	model := newWizardModel(buildPrompts(cfg))

	program := tea.NewProgram(model)
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	result, ok := final.(wizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected wizard model type %T", final)
	}
	if result.aborted {
		return nil, ErrWizardAborted
	}
	return result.Answers(), nil
}
