// ABOUTME: MCP tool definitions and registration for the sidekick server
// ABOUTME: Exposes inference, suggestion, and rule management over stdio
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/sidekick/internal/engine"
	"github.com/harper/sidekick/internal/facts"
	"github.com/harper/sidekick/internal/kb"
	"github.com/harper/sidekick/internal/storage"
	"github.com/harper/sidekick/internal/suggest"
)

// RegisterTools registers all MCP tools with the server.
func RegisterTools(server *mcpserver.MCPServer, knowledge *kb.KnowledgeBase, store *storage.Store, eng *engine.Engine, suggester *suggest.Suggester, collector *facts.Collector) *Handlers {
	handlers := &Handlers{
		kb:        knowledge,
		store:     store,
		engine:    eng,
		suggester: suggester,
		collector: collector,
	}

	factsProperty := map[string]interface{}{
		"type":        "object",
		"description": "Fact mapping from name to string, boolean, number, or list of strings",
	}

	// 1. run_inference - evaluate all rules against a fact snapshot
	server.AddTool(mcp.Tool{
		Name:        "run_inference",
		Description: "Run one inference pass. Evaluates every rule against the given facts (or freshly collected facts when omitted) and returns the activated actions.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"facts": factsProperty,
			},
		},
	}, handlers.RunInference)

	// 2. collect_facts - report the current ambient fact snapshot
	server.AddTool(mcp.Tool{
		Name:        "collect_facts",
		Description: "Collect and return the current fact snapshot (time of day, weekday, and any configured providers).",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.CollectFacts)

	// 3. list_rules - list all knowledge base rules
	server.AddTool(mcp.Tool{
		Name:        "list_rules",
		Description: "List all rules in the knowledge base in their stored order.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListRules)

	// 4. add_rule - add a rule to the knowledge base
	server.AddTool(mcp.Tool{
		Name:        "add_rule",
		Description: "Add a rule to the knowledge base. Fails if the name is already taken.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Unique rule name",
				},
				"rule": map[string]interface{}{
					"type":        "object",
					"description": "Rule body: description, conditions, and actions",
				},
			},
			Required: []string{"name", "rule"},
		},
	}, handlers.AddRule)

	// 5. remove_rule - remove a rule from the knowledge base
	server.AddTool(mcp.Tool{
		Name:        "remove_rule",
		Description: "Remove the named rule from the knowledge base.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the rule to remove",
				},
			},
			Required: []string{"name"},
		},
	}, handlers.RemoveRule)

	// 6. suggest_rules - mine the interaction log for rule candidates
	server.AddTool(mcp.Tool{
		Name:        "suggest_rules",
		Description: "Mine recent interaction history and return candidate rules that are frequent enough and not already known.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.SuggestRules)

	// 7. accept_rule - persist a previously suggested rule
	server.AddTool(mcp.Tool{
		Name:        "accept_rule",
		Description: "Accept a suggested rule (as returned by suggest_rules) into the knowledge base under a generated name.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"candidate": map[string]interface{}{
					"type":        "object",
					"description": "Candidate rule: description, conditions, and actions",
				},
			},
			Required: []string{"candidate"},
		},
	}, handlers.AcceptRule)

	// 8. record_interaction - append to the interaction log
	server.AddTool(mcp.Tool{
		Name:        "record_interaction",
		Description: "Record a user interaction (action type plus the facts that preceded it) in the interaction log.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"action_type": map[string]interface{}{
					"type":        "string",
					"description": "Action the user took, e.g. open_vscode",
				},
				"facts": factsProperty,
			},
			Required: []string{"action_type"},
		},
	}, handlers.RecordInteraction)

	return handlers
}
