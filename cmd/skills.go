package cmd

import (
	"fmt"
	"strings"

	"github.com/skillcheck/skillcheck/internal/catalog"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List assessable skills, levels, and question types",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Skills")
		fmt.Println(strings.Repeat("─", 40))
		for _, s := range catalog.AllSkills() {
			fmt.Printf("  %s\n", s)
		}

		fmt.Println("\nLevels")
		fmt.Println(strings.Repeat("─", 40))
		for _, l := range catalog.AllLevels() {
			fmt.Printf("  %s\n", l)
		}

		fmt.Println("\nQuestion types")
		fmt.Println(strings.Repeat("─", 40))
		for _, m := range catalog.AllModalities() {
			fmt.Printf("  %s\n", m)
		}
	},
}
