package main

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skilltree-api/internal/codec"
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/orchestrators/planner"
)

var (
	randomBonus   int
	randomBaseURL string
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Roll a random legal build",
	Long: `Spend the whole budget on randomly chosen allocatable skills and print the
build with its share link.`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().StringVar(&toolCatalogPath, "catalog", "", "YAML skill catalog, defaults to the embedded catalog")
	randomCmd.Flags().IntVar(&randomBonus, "bonus", 0, "bonus points to spend on top of the base budget")
	randomCmd.Flags().StringVar(&randomBaseURL, "base-url", "http://localhost:3000", "site origin for the share link")
}

func runRandom(cmd *cobra.Command, _ []string) error {
	e, err := toolEngine()
	if err != nil {
		return err
	}

	state := e.SetBonusPoints(skilltree.NewBuildState(), randomBonus)
	state, err = e.RandomBuild(state, dice.DefaultRoller)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := printBuild(out, e, state); err != nil {
		return err
	}

	token := codec.Encode(state)
	fmt.Fprintf(out, "\nurl: %s\n", planner.ShareURL(randomBaseURL, token))
	return nil
}
