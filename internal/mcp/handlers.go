// ABOUTME: MCP tool handler implementations for the sidekick server
// ABOUTME: Thin adapters from tool arguments onto the inference core
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/sidekick/internal/engine"
	"github.com/harper/sidekick/internal/facts"
	"github.com/harper/sidekick/internal/kb"
	"github.com/harper/sidekick/internal/models"
	"github.com/harper/sidekick/internal/storage"
	"github.com/harper/sidekick/internal/suggest"
)

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	kb        *kb.KnowledgeBase
	store     *storage.Store
	engine    *engine.Engine
	suggester *suggest.Suggester
	collector *facts.Collector
}

// RunInference handles the run_inference tool.
func (h *Handlers) RunInference(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snapshot := h.factsArgument(request)
	if snapshot == nil {
		snapshot = h.collector.Collect()
	}

	activated := h.engine.RunInference(snapshot)
	if activated == nil {
		activated = []models.DecoratedAction{}
	}

	response := map[string]interface{}{
		"facts":   snapshot,
		"actions": activated,
	}
	return jsonResult(response)
}

// CollectFacts handles the collect_facts tool.
func (h *Handlers) CollectFacts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.collector.Collect())
}

// ListRules handles the list_rules tool.
func (h *Handlers) ListRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rules := h.kb.Rules()
	return jsonResult(map[string]interface{}{
		"count": len(rules),
		"rules": rules,
	})
}

// AddRule handles the add_rule tool.
func (h *Handlers) AddRule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}

	var rule models.Rule
	if err := decodeObjectArgument(request, "rule", &rule); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid rule argument: %v", err)), nil
	}

	added, err := h.kb.AddRule(name, rule)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to add rule: %v", err)), nil
	}
	if !added {
		return mcp.NewToolResultError(fmt.Sprintf("rule %q already exists", name)), nil
	}

	return jsonResult(map[string]interface{}{"added": name})
}

// RemoveRule handles the remove_rule tool.
func (h *Handlers) RemoveRule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}

	removed, err := h.kb.RemoveRule(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to remove rule: %v", err)), nil
	}
	if !removed {
		return mcp.NewToolResultError(fmt.Sprintf("rule %q not found", name)), nil
	}

	return jsonResult(map[string]interface{}{"removed": name})
}

// SuggestRules handles the suggest_rules tool.
func (h *Handlers) SuggestRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	candidates, err := h.suggester.SuggestRules()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("suggestion pass failed: %v", err)), nil
	}
	if candidates == nil {
		candidates = []models.SuggestedRule{}
	}

	return jsonResult(map[string]interface{}{
		"count":      len(candidates),
		"candidates": candidates,
	})
}

// AcceptRule handles the accept_rule tool.
func (h *Handlers) AcceptRule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var candidate models.SuggestedRule
	if err := decodeObjectArgument(request, "candidate", &candidate); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid candidate argument: %v", err)), nil
	}

	name, err := suggest.Accept(h.kb, candidate)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to accept rule: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"added": name})
}

// RecordInteraction handles the record_interaction tool.
func (h *Handlers) RecordInteraction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	actionType, err := request.RequireString("action_type")
	if err != nil {
		return mcp.NewToolResultError("action_type argument is required and must be a string"), nil
	}

	snapshot := h.factsArgument(request)
	if snapshot == nil {
		snapshot = h.collector.Collect()
	}

	if err := h.store.LogInteraction(actionType, snapshot); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to record interaction: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"recorded": actionType,
		"facts":    snapshot,
	})
}

// factsArgument extracts an optional facts object from the request.
// Returns nil when the argument is absent or not an object.
func (h *Handlers) factsArgument(request mcp.CallToolRequest) models.Facts {
	args := request.GetArguments()
	raw, ok := args["facts"].(map[string]any)
	if !ok {
		return nil
	}
	return models.Facts(raw)
}

// decodeObjectArgument round-trips an object argument through JSON into
// a typed struct.
func decodeObjectArgument(request mcp.CallToolRequest, key string, out any) error {
	args := request.GetArguments()
	raw, ok := args[key]
	if !ok {
		return fmt.Errorf("%s argument is required", key)
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encoding %s argument: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s argument: %w", key, err)
	}
	return nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
