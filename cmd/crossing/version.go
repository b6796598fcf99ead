package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at release time; the default marks dev builds.
const version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of crossing",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("crossing version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
