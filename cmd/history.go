package cmd

import (
	"fmt"
	"strings"

	"github.com/skillcheck/skillcheck/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent assessment sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := store.Open(resolveDBPath(cmd))
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		sessions, err := st.RecentSessions(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-20s  %-12s  %-6s  %s\n",
			"ID", "Started", "Skill", "Level", "Score", "Status")
		fmt.Println(strings.Repeat("─", 110))

		for _, s := range sessions {
			status := "open"
			score := "-"
			if s.Complete {
				status = "done"
				score = fmt.Sprintf("%d%%", s.Score)
			}
			fmt.Printf("%-36s  %-19s  %-20s  %-12s  %-6s  %s\n",
				s.ID,
				s.StartedAt.Local().Format("2006-01-02 15:04:05"),
				s.Skill, s.Level, score, status)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
}
