package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "crossing solves bridge-and-lantern puzzles optimally",
	Long: `crossing finds the cheapest plan moving a party of travelers across a
bridge when at most two may cross at once, the shared lantern must travel
with every group, and a pair walks at the slower member's pace.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
