package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of enex2md",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("enex2md version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
