package ui

import (
	"testing"

	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pressKey(t *testing.T, m wizardModel, msg tea.KeyMsg) wizardModel {
	t.Helper()
	next, _ := m.Update(msg)
	result, ok := next.(wizardModel)
	require.True(t, ok)
	return result
}

func pressEnter(t *testing.T, m wizardModel) wizardModel {
	return pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func typeText(t *testing.T, m wizardModel, text string) wizardModel {
	t.Helper()
	for _, r := range text {
		m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func answerConfirm(t *testing.T, m wizardModel, yes bool) wizardModel {
	t.Helper()
	key := "n"
	if yes {
		key = "y"
	}
	return pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func TestWizard_FullRunProducesDecodableAnswers(t *testing.T) {
	m := newWizardModel(buildPrompts(config.DefaultConfig()))

	// project name, then pnpm (second manager option)
	m = typeText(t, m, "demo")
	m = pressEnter(t, m)
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressEnter(t, m)
	// decline auto install, keep the default framework
	m = answerConfirm(t, m, false)
	m = pressEnter(t, m)
	// decline all-agents, then answer per agent: react and research only
	m = answerConfirm(t, m, false)
	m = answerConfirm(t, m, true)
	m = answerConfirm(t, m, false)
	m = answerConfirm(t, m, true)
	m = answerConfirm(t, m, false)
	// init git
	m = answerConfirm(t, m, true)

	assert.True(t, m.done)
	answers := m.Answers()
	assert.Equal(t, "demo", answers["project_name"])
	assert.Equal(t, "pnpm", answers["package_manager"])
	assert.Equal(t, false, answers["auto_install"])
	assert.Equal(t, "nextjs", answers["framework"])
	assert.Equal(t, false, answers["all_agents"])
	assert.Equal(t, true, answers["init_git"])
	assert.Equal(t, map[string]bool{
		"react":     true,
		"memory":    false,
		"research":  true,
		"retrieval": false,
	}, answers["agents"])
}

func TestWizard_AllAgentsToggleSkipsPerAgentQuestions(t *testing.T) {
	m := newWizardModel(buildPrompts(config.DefaultConfig()))

	m = pressEnter(t, m)          // project_name: accept default
	m = pressEnter(t, m)          // package_manager
	m = answerConfirm(t, m, true) // auto_install
	m = pressEnter(t, m)          // framework
	m = answerConfirm(t, m, true) // all_agents: yes

	// The per-agent questions are suppressed; the next question is git init.
	require.False(t, m.done)
	assert.Equal(t, "init_git", m.current().key)

	m = answerConfirm(t, m, true)
	assert.True(t, m.done)

	answers := m.Answers()
	assert.Equal(t, true, answers["all_agents"])
	assert.Empty(t, answers["agents"], "no per-agent answers were collected")
}

func TestWizard_EmptyTextAnswerDefersToResolver(t *testing.T) {
	m := newWizardModel(buildPrompts(config.DefaultConfig()))

	// Plain enter on the name prompt commits an empty string; the resolver
	// substitutes the configured default downstream.
	m = pressEnter(t, m)

	assert.Equal(t, "", m.answers["project_name"])
	assert.Equal(t, "package_manager", m.current().key)
}

func TestWizard_ChoiceNavigationClampsAtEdges(t *testing.T) {
	m := newWizardModel(buildPrompts(config.DefaultConfig()))
	m = pressEnter(t, m) // move to package_manager

	// Up beyond the first option stays put.
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.choice)

	// Down beyond the last option stays put.
	for i := 0; i < 10; i++ {
		m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 2, m.choice)

	m = pressEnter(t, m)
	assert.Equal(t, "yarn", m.answers["package_manager"])
}

func TestWizard_KeysAfterFinalCommitAreIgnored(t *testing.T) {
	m := newWizardModel(buildPrompts(config.DefaultConfig()))

	m = pressEnter(t, m)          // project_name
	m = pressEnter(t, m)          // package_manager
	m = answerConfirm(t, m, true) // auto_install
	m = pressEnter(t, m)          // framework
	m = answerConfirm(t, m, true) // all_agents
	m = answerConfirm(t, m, true) // init_git
	require.True(t, m.done)

	// Keys already queued when the last prompt committed must not panic or
	// alter the collected answers.
	m = pressEnter(t, m)
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.True(t, m.done)
	assert.Equal(t, true, m.Answers()["init_git"])
}

func TestWizard_AbortKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := newWizardModel(buildPrompts(config.DefaultConfig()))
		m = pressKey(t, m, tea.KeyMsg{Type: key})
		assert.True(t, m.aborted)
	}
}

func TestWizard_ConfirmToggleThenEnter(t *testing.T) {
	m := newWizardModel(buildPrompts(config.DefaultConfig()))
	m = pressEnter(t, m) // project_name
	m = pressEnter(t, m) // package_manager

	// auto_install defaults to yes; toggle to no, then accept with enter.
	require.True(t, m.confirm)
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.False(t, m.confirm)
	m = pressEnter(t, m)

	assert.Equal(t, false, m.answers["auto_install"])
}

func TestBuildPrompts_DefaultsComeFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Defaults.PackageManager = "yarn"
	cfg.Defaults.Framework = "vite"

	prompts := buildPrompts(cfg)

	byKey := map[string]prompt{}
	for _, p := range prompts {
		byKey[p.key] = p
	}
	assert.Equal(t, "yarn", byKey["package_manager"].options[byKey["package_manager"].defaultChoice])
	assert.Equal(t, "vite", byKey["framework"].options[byKey["framework"].defaultChoice])
	// One confirm question per prebuilt agent.
	agentCount := 0
	for key := range byKey {
		if len(key) > 6 && key[:6] == "agent:" {
			agentCount++
		}
	}
	assert.Equal(t, 4, agentCount)
}
