// ABOUTME: CLI command to run one inference pass
// ABOUTME: Builds a fact snapshot from the clock and flags, prints activated actions
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/sidekick/internal/facts"
	"github.com/harper/sidekick/internal/models"
)

var (
	inferFacts   []string
	inferNoClock bool
	inferJSON    bool
)

// NewInferCmd creates the infer command.
func NewInferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Run one inference pass over the current facts",
		Long: `Run one inference pass over the current facts.

Collects clock facts (time of day, weekday), merges any --fact
overrides on top, evaluates every rule, and prints the actions of all
activated rules. Command actions are printed, not dispatched.

Examples:
  sidekick infer
  sidekick infer --fact weather_condition="mưa nhỏ" --fact schedule_activity=Gym
  sidekick infer --no-clock --fact time_category=morning --json`,
		RunE: runInfer,
	}

	cmd.Flags().StringArrayVar(&inferFacts, "fact", nil, "Additional fact as key=value (repeatable)")
	cmd.Flags().BoolVar(&inferNoClock, "no-clock", false, "Skip clock-derived facts")
	cmd.Flags().BoolVar(&inferJSON, "json", false, "Print results as JSON")

	return cmd
}

func runInfer(cmd *cobra.Command, args []string) error {
	c, err := openCore()
	if err != nil {
		return err
	}
	defer c.Close()

	overrides, err := parseFactFlags(inferFacts)
	if err != nil {
		return err
	}

	providers := []facts.Provider{}
	if !inferNoClock {
		providers = append(providers, facts.ClockProvider{})
	}
	providers = append(providers, facts.StaticProvider{Facts: overrides})
	snapshot := facts.NewCollector(c.logger, providers...).Collect()

	activated := c.engine.RunInference(snapshot)

	if inferJSON {
		out, err := json.MarshalIndent(map[string]any{
			"facts":   snapshot,
			"actions": activated,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(activated) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No rules activated.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tOUTPUT\tRULE")
	for _, action := range activated {
		output := action.Message
		if action.Type == models.ActionCommand {
			output = action.Command
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", action.Type, truncate(output, 60), truncate(action.RuleDescription, 50))
	}
	return w.Flush()
}
