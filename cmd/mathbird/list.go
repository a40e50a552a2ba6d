package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mathbird/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available rides",
	Long:  `Shows a list of all registered rides.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No rides available.")
		return
	}

	fmt.Println("Available rides:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print rides
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'mathbird play <id>' to play a ride.")
}
