package cmd

import (
	"fmt"
	"strings"

	"github.com/skillcheck/skillcheck/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request history",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		st, err := store.Open(resolveDBPath(cmd))
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		requests, err := st.RecentLLMRequests(cmd.Context(), purpose, limit)
		if err != nil {
			return fmt.Errorf("query llm requests: %w", err)
		}

		if len(requests) == 0 {
			fmt.Println("No LLM requests found.")
			return nil
		}

		// Header.
		fmt.Printf("%-5s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range requests {
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			model := r.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Purpose,
				model,
				r.InputTokens,
				r.OutputTokens,
				r.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. question-gen, answer-eval)")

	llmCmd.AddCommand(llmListCmd)
}
