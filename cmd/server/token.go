package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skilltree-api/internal/codec"
	"github.com/KirkDiggler/skilltree-api/internal/engine"
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/orchestrators/planner"
)

var (
	toolCatalogPath string
	tokenLevels     map[string]int
	tokenBonus      int
	tokenBaseURL    string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Encode and decode build share tokens",
}

var tokenEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a build into a share token",
	Long: `Encode a build into a share token. The build is repaired against the
catalog first, so the token always describes a legal build. Example:

  skilltree token encode --level used-to-the-weight=3 --bonus 2`,
	Args: cobra.NoArgs,
	RunE: runTokenEncode,
}

var tokenDecodeCmd = &cobra.Command{
	Use:   "decode [token]",
	Short: "Decode a share token and print the build",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenDecode,
}

func init() {
	tokenCmd.PersistentFlags().StringVar(&toolCatalogPath, "catalog", "", "YAML skill catalog, defaults to the embedded catalog")

	tokenEncodeCmd.Flags().StringToIntVar(&tokenLevels, "level", nil, "skill levels as id=level, repeatable")
	tokenEncodeCmd.Flags().IntVar(&tokenBonus, "bonus", 0, "bonus points")
	tokenEncodeCmd.Flags().StringVar(&tokenBaseURL, "base-url", "http://localhost:3000", "site origin for the share link")

	tokenCmd.AddCommand(tokenEncodeCmd)
	tokenCmd.AddCommand(tokenDecodeCmd)
}

func toolEngine() (*engine.Allocator, error) {
	c, err := loadCatalog(toolCatalogPath)
	if err != nil {
		return nil, err
	}
	return engine.New(&engine.Config{Catalog: c})
}

func runTokenEncode(cmd *cobra.Command, _ []string) error {
	e, err := toolEngine()
	if err != nil {
		return err
	}

	state := skilltree.NewBuildState()
	state.BonusPoints = tokenBonus
	for id, level := range tokenLevels {
		state.SkillLevels[id] = level
	}

	repaired := e.Repair(state)
	out := cmd.OutOrStdout()
	if repaired.Changed {
		fmt.Fprintf(out, "build repaired: dropped %v, adjusted %v\n", repaired.Dropped, repaired.Adjusted)
	}

	token := codec.Encode(repaired.State)
	fmt.Fprintf(out, "token: %s\n", token)
	fmt.Fprintf(out, "url:   %s\n", planner.ShareURL(tokenBaseURL, token))
	return nil
}

func runTokenDecode(cmd *cobra.Command, args []string) error {
	e, err := toolEngine()
	if err != nil {
		return err
	}

	state, err := codec.Decode(e.Catalog(), args[0])
	if err != nil {
		return errors.Wrap(err, "failed to decode token")
	}

	repaired := e.Repair(state)
	out := cmd.OutOrStdout()
	if repaired.Changed {
		fmt.Fprintf(out, "build repaired: dropped %v, adjusted %v\n", repaired.Dropped, repaired.Adjusted)
	}

	return printBuild(out, e, repaired.State)
}

// printBuild writes the allocated skills and the point totals of state
func printBuild(w io.Writer, e *engine.Allocator, state skilltree.BuildState) error {
	summary := e.Summarize(state)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SKILL\tCATEGORY\tLEVEL")
	for _, a := range summary.Allocated {
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\n", a.Skill.ID, a.Skill.Category, a.Level, a.Skill.MaxLevel)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nspent %d of %d (bonus %d/%d), player level %d\n",
		summary.TotalSpent, summary.AvailablePoints, summary.BonusPoints, summary.MaxBonus, summary.PlayerLevel)
	for _, category := range e.Catalog().Categories() {
		fmt.Fprintf(w, "  %-13s %d\n", category, summary.SpentByCategory[category])
	}
	return nil
}
