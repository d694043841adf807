package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skilltree-api/internal/handlers/skilltree/v1alpha1"
)

var allocateCmd = skillCommand("allocate", "Add a point to a skill",
	func(c v1alpha1.BuildPlannerServiceClient) unaryMethod { return c.Allocate })

var deallocateCmd = skillCommand("deallocate", "Remove a point from a skill, clearing dependents that lose their gating",
	func(c v1alpha1.BuildPlannerServiceClient) unaryMethod { return c.Deallocate })

var clearSkillCmd = skillCommand("clear", "Remove every point from a skill",
	func(c v1alpha1.BuildPlannerServiceClient) unaryMethod { return c.ClearSkill })

var setBonusCmd = &cobra.Command{
	Use:   "bonus [session-id] [points]",
	Short: "Set a session's bonus points",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("points must be a whole number: %w", err)
		}
		return invoke(cmd, func(c v1alpha1.BuildPlannerServiceClient) unaryMethod { return c.SetBonusPoints }, map[string]any{
			v1alpha1.FieldSessionID:   args[0],
			v1alpha1.FieldBonusPoints: points,
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset [session-id]",
	Short: "Clear a session's build and bonus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, func(c v1alpha1.BuildPlannerServiceClient) unaryMethod { return c.Reset }, map[string]any{
			v1alpha1.FieldSessionID: args[0],
		})
	},
}

func skillCommand(use, short string, pick func(v1alpha1.BuildPlannerServiceClient) unaryMethod) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [session-id] [skill-id]",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, pick, map[string]any{
				v1alpha1.FieldSessionID: args[0],
				v1alpha1.FieldSkillID:   args[1],
			})
		},
	}
}
