package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skilltree-api/internal/handlers/skilltree/v1alpha1"
)

var (
	startSessionID string
	startToken     string
	listSessionID  string
)

var startSessionCmd = &cobra.Command{
	Use:   "start",
	Short: "Start or resume a planning session",
	Long: `Start a planning session. Examples:

  start
  start --session build_123
  start --token eyJiIjowLCJsIjp7fX0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd, func(c v1alpha1.BuildPlannerServiceClient) unaryMethod { return c.StartSession }, map[string]any{
			v1alpha1.FieldSessionID: startSessionID,
			v1alpha1.FieldToken:     startToken,
		})
	},
}

var getBuildCmd = &cobra.Command{
	Use:   "get [session-id]",
	Short: "Show a session's build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, func(c v1alpha1.BuildPlannerServiceClient) unaryMethod { return c.GetBuild }, map[string]any{
			v1alpha1.FieldSessionID: args[0],
		})
	},
}

var shareCmd = &cobra.Command{
	Use:   "share [session-id]",
	Short: "Print the share link of a session's build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, func(c v1alpha1.BuildPlannerServiceClient) unaryMethod { return c.Share }, map[string]any{
			v1alpha1.FieldSessionID: args[0],
		})
	},
}

var listSkillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the catalog, optionally with a session's levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd, func(c v1alpha1.BuildPlannerServiceClient) unaryMethod { return c.ListSkills }, map[string]any{
			v1alpha1.FieldSessionID: listSessionID,
		})
	},
}

func init() {
	startSessionCmd.Flags().StringVar(&startSessionID, "session", "", "session to resume")
	startSessionCmd.Flags().StringVar(&startToken, "token", "", "share token to open")
	listSkillsCmd.Flags().StringVar(&listSessionID, "session", "", "annotate skills with this session's build")
}
