// ABOUTME: CLI command to mine interaction history for rule suggestions
// ABOUTME: Lists candidates and optionally accepts one into the knowledge base
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/sidekick/internal/suggest"
)

var (
	suggestAccept int
	suggestJSON   bool
)

// NewSuggestCmd creates the suggest command.
func NewSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest new rules mined from interaction history",
		Long: `Suggest new rules mined from interaction history.

Groups recent interactions by the fact set that preceded each action.
A fact set whose dominant action recurs often enough, and which is not
already covered by an existing rule, becomes a candidate.

Examples:
  sidekick suggest
  sidekick suggest --accept 1`,
		RunE: runSuggest,
	}

	cmd.Flags().IntVar(&suggestAccept, "accept", 0, "Accept candidate N (1-based) into the knowledge base")
	cmd.Flags().BoolVar(&suggestJSON, "json", false, "Print candidates as JSON")

	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
	c, err := openCore()
	if err != nil {
		return err
	}
	defer c.Close()

	candidates, err := c.suggester.SuggestRules()
	if err != nil {
		return err
	}

	if suggestAccept > 0 {
		if suggestAccept > len(candidates) {
			return fmt.Errorf("candidate %d does not exist (%d candidates)", suggestAccept, len(candidates))
		}
		name, err := suggest.Accept(c.kb, candidates[suggestAccept-1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Accepted candidate %d as %q.\n", suggestAccept, name)
		return nil
	}

	if suggestJSON {
		out, err := json.MarshalIndent(candidates, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(candidates) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No suggestions. Not enough recurring interactions.")
		return nil
	}

	for i, candidate := range candidates {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, candidate.Description)
		for _, cond := range candidate.Conditions {
			fmt.Fprintf(cmd.OutOrStdout(), "     when %s %s %v\n", cond.Fact, cond.Operator, cond.Value)
		}
		for _, action := range candidate.Actions {
			if action.Command != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "     then run %s\n", action.Command)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "     then say %s\n", truncate(action.Message, 60))
			}
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nAccept one with: sidekick suggest --accept N\n")
	return nil
}
