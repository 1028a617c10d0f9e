package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/services"
)

// PrepareWeekCmd creates the prepareWeek command
func PrepareWeekCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prepareWeek <from> <to>",
		Short: "Decompose needs and capacities into half-day slots",
		Long:  "Fetch the need and capacity records for a date range and expand them into canonical morning/afternoon slots",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := args[0], args[1]

			app.Logger.Debug("prepareWeek command",
				zap.String("from", from),
				zap.String("to", to))

			result, err := services.PrepareWeek(app.Ctx, app.Database, app.Logger, from, to)
			if err != nil {
				return fmt.Errorf("preparation failed: %w", err)
			}

			fmt.Printf("\n📋 Planning Window %s → %s\n\n", result.From, result.To)
			fmt.Printf("Need slots:     %d\n", len(result.NeedSlots))
			fmt.Printf("Capacity slots: %d (of which %d backup)\n", len(result.CapacitySlots), result.BackupCapacitySlots)
			if result.SkippedNeeds > 0 || result.SkippedCapacities > 0 {
				fmt.Printf("Skipped:        %d needs, %d capacities (unresolvable site/person)\n",
					result.SkippedNeeds, result.SkippedCapacities)
			}
			fmt.Println()

			fmt.Printf("Need Slots:\n")
			for _, slot := range result.NeedSlots {
				role := ""
				if slot.RequiredRole != "" {
					role = fmt.Sprintf(" [%s]", slot.RequiredRole)
				}
				fmt.Printf("  %s  %s %-10s %s%s\n", slot.ID, slot.Date, slot.Period, slot.SiteName, role)
			}
			fmt.Printf("\nCapacity Slots:\n")
			for _, slot := range result.CapacitySlots {
				backup := ""
				if slot.IsBackup {
					backup = " (backup)"
				}
				fmt.Printf("  %s  %s %-10s %s%s\n", slot.ID, slot.Date, slot.Period, slot.PersonName, backup)
			}
			fmt.Println()

			return nil
		},
	}
}
