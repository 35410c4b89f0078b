package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/commit-gate/internal/hooks"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "commit-gate",
		Short:        "Claude Code hook that enforces Conventional Commits",
		Long:         `A CLI tool providing a PreToolUse hook for Claude Code that denies git commit commands whose message does not follow the Conventional Commits format.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newPreToolUseCmd())
	rootCmd.AddCommand(newRulesCmd())

	return rootCmd
}

// gateRules returns the rules the gate evaluates. The roster is exactly the
// conventional commit rule: every other command must pass through untouched.
func gateRules() []hooks.Rule {
	return []hooks.Rule{
		hooks.NewConventionalCommitRule(),
	}
}

func newPreToolUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "pre-tool-use",
		Short:        "Evaluate commit message rules before tool execution",
		Long:         `Reads tool input from stdin as JSON and evaluates the commit message rules. Writes a deny decision as JSON to stdout when a rule blocks; writes nothing to allow. The exit code is 0 in both cases, non-zero only when the input cannot be parsed.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			toolInput, err := hooks.ParseToolInput(cmd.InOrStdin())
			if err != nil {
				return err
			}

			engine := hooks.NewRuleEngine(gateRules()...)
			result, err := engine.Evaluate(toolInput)
			if err != nil {
				return fmt.Errorf("failed to evaluate rules: %w", err)
			}

			if result.Allowed {
				return nil
			}

			payload, err := json.Marshal(hooks.NewDenyOutput(result.Message))
			if err != nil {
				return fmt.Errorf("failed to encode decision: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))

			return nil
		},
	}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the rules the gate evaluates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, rule := range gateRules() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", rule.Name(), rule.Description())
			}
		},
	}
}
