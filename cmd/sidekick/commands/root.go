// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Entry point used by cmd/sidekick/main.go
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	quiet     bool
	rulesPath string
	dbPath    string
)

const banner = `
███████╗██╗██████╗ ███████╗██╗  ██╗██╗ ██████╗██╗  ██╗
██╔════╝██║██╔══██╗██╔════╝██║ ██╔╝██║██╔════╝██║ ██╔╝
███████╗██║██║  ██║█████╗  █████╔╝ ██║██║     █████╔╝
╚════██║██║██║  ██║██╔══╝  ██╔═██╗ ██║██║     ██╔═██╗
███████║██║██████╔╝███████╗██║  ██╗██║╚██████╗██║  ██╗
╚══════╝╚═╝╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝ ╚═════╝╚═╝  ╚═╝
`

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sidekick",
		Short: "Rule-based desktop assistant core",
		Long: banner + `
Sidekick is a forward-chaining inference assistant. It matches the
current facts (time of day, weather, schedule, app state) against a
knowledge base of rules, emits recommendations and commands, and mines
your interaction history to suggest new rules.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	cmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "Path to the rule store (default: data dir rules.yaml)")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the interaction log database")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewInferCmd(),
		NewFactsCmd(),
		NewRulesCmd(),
		NewSuggestCmd(),
		NewRecordCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
