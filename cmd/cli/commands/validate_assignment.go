package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/services"
)

// ValidateAssignmentCmd creates the validateAssignment command
func ValidateAssignmentCmd(app *AppContext) *cobra.Command {
	var periods []string
	var requiredRole string

	cmd := &cobra.Command{
		Use:   "validateAssignment <person_id> <date>",
		Short: "Pre-flight a candidate assignment against claims and competencies",
		Long:  "Check whether a person may take the given half-day periods on a date: overlap with already-held claims and eligibility for the required role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			personID, date := args[0], args[1]

			candidatePeriods := make([]model.Period, 0, len(periods))
			for _, period := range periods {
				p := model.Period(period)
				if !p.IsValid() {
					return fmt.Errorf("invalid period %q (must be matin or apres_midi)", period)
				}
				candidatePeriods = append(candidatePeriods, p)
			}

			app.Logger.Debug("validateAssignment command",
				zap.String("person_id", personID),
				zap.String("date", date),
				zap.Strings("periods", periods),
				zap.String("required_role", requiredRole))

			result, err := services.ValidateAssignments(app.Ctx, app.Database, app.Logger, []services.CandidateAssignment{
				{
					PersonID:     personID,
					Date:         date,
					Periods:      candidatePeriods,
					RequiredRole: model.RoleCode(requiredRole),
				},
			})
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			if result.SkippedUnknownPeople > 0 {
				fmt.Printf("\n⚠️  Person %s is not in the directory; nothing to validate\n\n", personID)
				return nil
			}

			if len(result.Conflicts) == 0 {
				fmt.Printf("\n✅ No conflict: %s may take %v on %s\n\n", personID, periods, date)
				fmt.Printf("Note: this is an advisory check; the claim table's unique key has the final say at commit time.\n\n")
				return nil
			}

			fmt.Printf("\n❌ Conflicts (%d):\n", len(result.Conflicts))
			for _, conflict := range result.Conflicts {
				fmt.Printf("  • [%s] %s\n", conflict.Kind, conflict.Description)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&periods, "periods", "p", []string{"matin", "apres_midi"}, "Periods to claim (matin, apres_midi)")
	cmd.Flags().StringVarP(&requiredRole, "role", "r", "", "Required role code for the slot, if any")

	return cmd
}
