package cmd

import (
	"github.com/skillcheck/skillcheck/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillcheck",
	Short: "Soft skills assessment from the terminal",
	Long:  "Skillcheck runs AI-driven soft skills assessments: it generates questions, evaluates your answers, and tracks your scores over time.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLCHECK_DB env var)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLCHECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p
	}
	return store.DefaultDBPath()
}
