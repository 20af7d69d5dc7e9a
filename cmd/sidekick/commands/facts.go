// ABOUTME: CLI command to print the current fact snapshot
// ABOUTME: Useful for checking what the engine would see before running infer
package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var factsJSON bool

// NewFactsCmd creates the facts command.
func NewFactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facts",
		Short: "Show the current fact snapshot",
		RunE:  runFacts,
	}

	cmd.Flags().BoolVar(&factsJSON, "json", false, "Print facts as JSON")
	return cmd
}

func runFacts(cmd *cobra.Command, args []string) error {
	c, err := openCore()
	if err != nil {
		return err
	}
	defer c.Close()

	snapshot := c.collector.Collect()

	if factsJSON {
		out, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding facts: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FACT\tVALUE")
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%v\n", k, snapshot[k])
	}
	return w.Flush()
}
