// Package selection normalizes raw wizard answers into a canonical, fully
// populated Selection record that drives the rest of the generator.
package selection

import (
	"github.com/Phan-ChiHieu/create-agent-chat-app/internal/catalog"
)

// Selection is the fully-resolved set of user choices. Every field is
// populated; downstream components never see a partial record.
type Selection struct {
	ProjectName    string
	PackageManager catalog.PackageManager
	AutoInstall    bool
	Framework      catalog.Framework
	Agents         AgentSet
	InitGit        bool
}

// AgentSet holds one explicit boolean per prebuilt agent.
type AgentSet struct {
	React     bool
	Memory    bool
	Research  bool
	Retrieval bool
}

// AllAgents is the set with every agent enabled.
var AllAgents = AgentSet{React: true, Memory: true, Research: true, Retrieval: true}

// Has reports whether the given agent is selected.
func (s AgentSet) Has(id catalog.AgentID) bool {
	switch id {
	case catalog.AgentReact:
		return s.React
	case catalog.AgentMemory:
		return s.Memory
	case catalog.AgentResearch:
		return s.Research
	case catalog.AgentRetrieval:
		return s.Retrieval
	}
	return false
}

// Selected returns the selected agent ids in canonical order.
func (s AgentSet) Selected() []catalog.AgentID {
	ids := make([]catalog.AgentID, 0, len(catalog.AgentOrder))
	for _, id := range catalog.AgentOrder {
		if s.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Count returns the number of selected agents.
func (s AgentSet) Count() int {
	return len(s.Selected())
}
