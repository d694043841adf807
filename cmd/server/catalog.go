package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate and list the skill catalog",
	Long: `Load the skill catalog, run the same validation the server runs at startup
and list every skill in declaration order.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&toolCatalogPath, "catalog", "", "YAML skill catalog, defaults to the embedded catalog")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	c, err := loadCatalog(toolCatalogPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	budget := c.Budget()
	fmt.Fprintf(out, "catalog %s: %d skills, base budget %d, max bonus %d\n\n",
		c.Version(), c.Len(), budget.Base, budget.MaxBonus)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tTIER\tMAX\tREQUIRES\tTHRESHOLD")
	for _, skill := range c.Skills() {
		requires := "-"
		if !skill.IsRoot() {
			requires = string(skill.Mode) + "(" + strings.Join(skill.Prerequisites, ",") + ")"
		}
		threshold := "-"
		if skill.HasThreshold() {
			threshold = fmt.Sprint(skill.RequiredCategoryPoints)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
			skill.ID, skill.Category, skill.Tier, skill.MaxLevel, requires, threshold)
	}
	return tw.Flush()
}
