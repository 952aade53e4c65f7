// Package catalog holds the fixed option tables the generator is driven by:
// the four prebuilt agents, the three package managers, and the two web
// frameworks. Adding an option is a data change here, not a control-flow
// change elsewhere.
package catalog

// AgentID identifies one of the prebuilt agent templates.
type AgentID string

const (
	AgentReact     AgentID = "react"
	AgentMemory    AgentID = "memory"
	AgentResearch  AgentID = "research"
	AgentRetrieval AgentID = "retrieval"
)

// AgentOrder is the canonical iteration order for agents. It fixes console
// output ordering, env-var first-seen ordering, and graph insertion order.
var AgentOrder = []AgentID{AgentReact, AgentMemory, AgentResearch, AgentRetrieval}

// GraphEntry maps a logical graph id to its implementing module and export.
type GraphEntry struct {
	ID     string
	Target string // "<module path>:<export name>"
}

// Agent describes one prebuilt agent: its template name, the dependencies it
// injects into the agents package manifest, the environment variables it
// requires, and the graph-registry entries it contributes.
type Agent struct {
	ID           AgentID
	Template     string
	Dependencies map[string]string
	EnvVars      []string
	Graphs       []GraphEntry
}

// agents is keyed by AgentID. Dependency tables are disjoint across agents;
// env-var sets intentionally overlap (the union is deduplicated downstream).
var agents = map[AgentID]Agent{
	AgentReact: {
		ID:       AgentReact,
		Template: "react-agent",
		Dependencies: map[string]string{
			"@langchain/anthropic": "^0.3.15",
			"@langchain/tavily":    "^0.1.4",
		},
		EnvVars: []string{"ANTHROPIC_API_KEY", "TAVILY_API_KEY"},
		Graphs: []GraphEntry{
			{ID: "agent", Target: "./react/src/graph.ts:graph"},
		},
	},
	AgentMemory: {
		ID:       AgentMemory,
		Template: "memory-agent",
		Dependencies: map[string]string{
			"@langchain/langgraph-checkpoint": "^0.0.16",
		},
		EnvVars: []string{"ANTHROPIC_API_KEY"},
		Graphs: []GraphEntry{
			{ID: "memory_agent", Target: "./memory/src/graph.ts:graph"},
		},
	},
	AgentResearch: {
		ID:       AgentResearch,
		Template: "research-agent",
		Dependencies: map[string]string{
			"@langchain/community":   "^0.3.33",
			"@elastic/elasticsearch": "^8.17.0",
		},
		EnvVars: []string{"OPENAI_API_KEY", "ELASTICSEARCH_URL", "ELASTICSEARCH_API_KEY"},
		Graphs: []GraphEntry{
			{ID: "retrieval_graph", Target: "./research/src/retrieval_graph/graph.ts:graph"},
			{ID: "indexing_graph", Target: "./research/src/index_graph/graph.ts:graph"},
		},
	},
	AgentRetrieval: {
		ID:       AgentRetrieval,
		Template: "retrieval-agent",
		Dependencies: map[string]string{
			"@langchain/openai":           "^0.4.4",
			"@pinecone-database/pinecone": "^5.0.2",
			"@langchain/textsplitters":    "^0.1.0",
		},
		EnvVars: []string{"OPENAI_API_KEY", "PINECONE_API_KEY", "PINECONE_INDEX_NAME"},
		Graphs: []GraphEntry{
			{ID: "retrieval_agent", Target: "./retrieval/src/graph.ts:graph"},
		},
	},
}

// AgentByID looks up a prebuilt agent definition.
func AgentByID(id AgentID) (Agent, bool) {
	a, ok := agents[id]
	return a, ok
}

// IsAgentID reports whether s names a known agent.
func IsAgentID(s string) bool {
	_, ok := agents[AgentID(s)]
	return ok
}
