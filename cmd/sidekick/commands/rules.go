// ABOUTME: CLI commands to inspect and edit the knowledge base
// ABOUTME: rules list / rules show / rules add / rules remove
package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harper/sidekick/internal/models"
)

var rulesAddFile string

// NewRulesCmd creates the rules command group.
func NewRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and edit the knowledge base",
	}

	cmd.AddCommand(newRulesListCmd(), newRulesShowCmd(), newRulesAddCmd(), newRulesRemoveCmd())
	return cmd
}

func newRulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all rules in stored order",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCore()
			if err != nil {
				return err
			}
			defer c.Close()

			rules := c.kb.Rules()
			if len(rules) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No rules.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCONDITIONS\tACTIONS\tDESCRIPTION")
			for _, rule := range rules {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
					rule.Name, len(rule.Conditions), len(rule.Actions), truncate(rule.Description, 60))
			}
			return w.Flush()
		},
	}
}

func newRulesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print one rule as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCore()
			if err != nil {
				return err
			}
			defer c.Close()

			rule, ok := c.kb.Get(args[0])
			if !ok {
				return fmt.Errorf("rule %q not found", args[0])
			}

			out, err := yaml.Marshal(map[string]models.Rule{rule.Name: rule})
			if err != nil {
				return fmt.Errorf("encoding rule: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newRulesAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a rule from a YAML file",
		Long: `Add a rule from a YAML file.

The file holds the rule body (description, conditions, actions):

  description: Nếu trời nắng, đề xuất đi dạo.
  conditions:
    - fact: weather_condition
      operator: contains
      value: nắng
  actions:
    - type: recommendation
      message: Trời đẹp đấy, đi dạo một vòng nhé!`,
		Args: cobra.ExactArgs(1),
		RunE: runRulesAdd,
	}

	cmd.Flags().StringVarP(&rulesAddFile, "file", "f", "", "YAML file with the rule body (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runRulesAdd(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(rulesAddFile)
	if err != nil {
		return fmt.Errorf("reading rule file: %w", err)
	}

	var rule models.Rule
	if err := yaml.Unmarshal(data, &rule); err != nil {
		return fmt.Errorf("parsing rule file: %w", err)
	}
	if len(rule.Conditions) == 0 {
		return fmt.Errorf("rule has no conditions")
	}
	if len(rule.Actions) == 0 {
		return fmt.Errorf("rule has no actions")
	}

	c, err := openCore()
	if err != nil {
		return err
	}
	defer c.Close()

	added, err := c.kb.AddRule(args[0], rule)
	if err != nil {
		return err
	}
	if !added {
		return fmt.Errorf("rule %q already exists", args[0])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added rule %q.\n", args[0])
	return nil
}

func newRulesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCore()
			if err != nil {
				return err
			}
			defer c.Close()

			removed, err := c.kb.RemoveRule(args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("rule %q not found", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed rule %q.\n", args[0])
			return nil
		},
	}
}
