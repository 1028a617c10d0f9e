package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/services"
)

// GeneratePlanningCmd creates the generatePlanning command
func GeneratePlanningCmd(app *AppContext) *cobra.Command {
	var minimizeChanges bool
	var commit bool
	var flexible []string

	cmd := &cobra.Command{
		Use:   "generatePlanning <week_start>",
		Short: "Request a weekly roster from the solver and score it",
		Long:  "Expand the planning week, submit it to the remote optimizer, re-derive assignment statuses locally, check closure coverage and penalties, and optionally commit the batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart := args[0]

			flexibleOverrides := make(map[string]bool, len(flexible))
			for _, slotID := range flexible {
				flexibleOverrides[slotID] = true
			}

			app.Logger.Debug("generatePlanning command",
				zap.String("week_start", weekStart),
				zap.Bool("minimize_changes", minimizeChanges),
				zap.Bool("commit", commit))

			result, err := services.GeneratePlanning(app.Ctx, app.Database, app.Solver, app.Cfg, app.Logger,
				weekStart, minimizeChanges, flexibleOverrides, commit)
			if err != nil {
				return fmt.Errorf("planning failed: %w", err)
			}

			fmt.Printf("\n🗓  Weekly Planning %s → %s\n\n", result.Dates[0], result.Dates[len(result.Dates)-1])
			fmt.Printf("Assignments:   %d\n", len(result.Assignments))
			fmt.Printf("Satisfait:     %d\n", result.Stats.Satisfait)
			fmt.Printf("Partiel:       %d\n", result.Stats.Partiel)
			fmt.Printf("Non satisfait: %d\n", result.Stats.NonSatisfait)
			fmt.Printf("Satisfaction:  %.0f%%\n", result.Stats.SatisfactionRate*100)
			if result.StatsDiverge {
				fmt.Printf("⚠️  Solver stats diverge from local classification (solver: %d/%d/%d)\n",
					result.SolverStats.Satisfait, result.SolverStats.Partiel, result.SolverStats.NonSatisfait)
			}
			fmt.Println()

			fmt.Printf("Penalties: site changes %d, multiple closures %d, overflow %d (total %d)\n\n",
				result.Penalties.SiteChanges, result.Penalties.MultipleClosures,
				result.Penalties.Overflow, result.Penalties.Total())

			if len(result.ClosureIssues) == 0 {
				fmt.Printf("✅ Closure coverage compliant for all closing sites\n")
			} else {
				for siteID, issues := range result.ClosureIssues {
					fmt.Printf("❌ Closure issues at %s (%d):\n", siteID, len(issues))
					for _, issue := range issues {
						fmt.Printf("  • %s\n", issue.Description)
					}
				}
			}
			fmt.Println()

			if commit {
				if result.Committed {
					fmt.Printf("Status: ✅ COMMITTED (assignments and claims saved)\n\n")
				}
			} else {
				fmt.Printf("Mode:   🧪 DRY RUN (not saved)\n\n")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&minimizeChanges, "minimize-changes", false, "Ask the solver to stay close to the previous roster")
	cmd.Flags().BoolVar(&commit, "commit", false, "Persist the accepted batch and its claims")
	cmd.Flags().StringSliceVar(&flexible, "flexible", nil, "Need slot ids the solver may treat as flexible")

	return cmd
}
