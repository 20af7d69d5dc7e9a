// ABOUTME: CLI command to append an interaction to the log
// ABOUTME: Records the action taken together with the facts that preceded it
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/sidekick/internal/facts"
)

var recordFacts []string

// NewRecordCmd creates the record command.
func NewRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record <action_type>",
		Short: "Record a user interaction in the log",
		Long: `Record a user interaction in the log.

Stores the action type together with the current fact snapshot. The
suggest command mines these records for recurring patterns.

Examples:
  sidekick record open_vscode
  sidekick record open_schedule --fact time_category=morning`,
		Args: cobra.ExactArgs(1),
		RunE: runRecord,
	}

	cmd.Flags().StringArrayVar(&recordFacts, "fact", nil, "Additional fact as key=value (repeatable)")
	return cmd
}

func runRecord(cmd *cobra.Command, args []string) error {
	c, err := openCore()
	if err != nil {
		return err
	}
	defer c.Close()

	overrides, err := parseFactFlags(recordFacts)
	if err != nil {
		return err
	}

	snapshot := facts.NewCollector(c.logger,
		facts.ClockProvider{},
		facts.StaticProvider{Facts: overrides},
	).Collect()

	if err := c.store.LogInteraction(args[0], snapshot); err != nil {
		return fmt.Errorf("recording interaction: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %q with %d facts.\n", args[0], len(snapshot))
	return nil
}
