// Package main is the entry point for the skill tree planner
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skilltree-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "skilltree",
	Short: "Skill tree build planner",
	Long: `skilltree serves the build planner over gRPC and provides offline tools for
share tokens, the skill catalog and random builds.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(repairCmd)
}
