package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentOrder_CoversEveryAgent(t *testing.T) {
	assert.Len(t, AgentOrder, len(agents))
	for _, id := range AgentOrder {
		_, ok := AgentByID(id)
		assert.True(t, ok, "agent %s in order but not in table", id)
	}
}

func TestAgentDependencyTables_AreDisjoint(t *testing.T) {
	// The first-writer-wins tie-break in dependency injection must never
	// fire on shipped data.
	seen := map[string]AgentID{}
	for _, id := range AgentOrder {
		agent, _ := AgentByID(id)
		for dep := range agent.Dependencies {
			prev, dup := seen[dep]
			assert.False(t, dup, "dependency %s appears in both %s and %s", dep, prev, id)
			seen[dep] = id
		}
	}
}

func TestResearchAgent_ContributesTwoGraphs(t *testing.T) {
	research, ok := AgentByID(AgentResearch)
	require.True(t, ok)
	require.Len(t, research.Graphs, 2)
	assert.NotEqual(t, research.Graphs[0].ID, research.Graphs[1].ID)

	for _, id := range AgentOrder {
		agent, _ := AgentByID(id)
		if id == AgentResearch {
			continue
		}
		assert.Len(t, agent.Graphs, 1, "agent %s", id)
	}
}

func TestReactAndMemory_ShareOneEnvVar(t *testing.T) {
	react, _ := AgentByID(AgentReact)
	memory, _ := AgentByID(AgentMemory)

	require.Len(t, react.EnvVars, 2)

	shared := 0
	for _, r := range react.EnvVars {
		for _, m := range memory.EnvVars {
			if r == m {
				shared++
			}
		}
	}
	assert.Equal(t, 1, shared)
}

func TestManagerOverrideKeys(t *testing.T) {
	tests := []struct {
		manager PackageManager
		key     string
	}{
		{ManagerNPM, "overrides"},
		{ManagerYarn, "resolutions"},
		{ManagerPNPM, "resolutions"},
	}

	for _, tt := range tests {
		mgr, ok := ManagerByID(tt.manager)
		require.True(t, ok, "manager %s", tt.manager)
		assert.Equal(t, tt.key, mgr.OverrideKey, "manager %s", tt.manager)
	}
}

func TestManagerWorkspaceShapes(t *testing.T) {
	npm, _ := ManagerByID(ManagerNPM)
	assert.Equal(t, WorkspaceManifest, npm.Shape)
	assert.Empty(t, npm.WorkspaceFile)

	pnpm, _ := ManagerByID(ManagerPNPM)
	assert.Equal(t, WorkspaceGlobFile, pnpm.Shape)
	assert.Equal(t, "pnpm-workspace.yaml", pnpm.WorkspaceFile)

	yarn, _ := ManagerByID(ManagerYarn)
	assert.Equal(t, WorkspaceLinkerFile, yarn.Shape)
	assert.Equal(t, ".yarnrc.yml", yarn.WorkspaceFile)
}

func TestIsID_Helpers(t *testing.T) {
	assert.True(t, IsAgentID("react"))
	assert.False(t, IsAgentID("reactor"))
	assert.True(t, IsManagerID("pnpm"))
	assert.False(t, IsManagerID("bun"))
	assert.True(t, IsFrameworkID("vite"))
	assert.False(t, IsFrameworkID("svelte"))
}
