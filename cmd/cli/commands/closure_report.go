package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/services"
)

// ClosureReportCmd creates the closureReport command
func ClosureReportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "closureReport <site_id> <from> <to>",
		Short: "Check closing-responsibility coverage for a site",
		Long:  "Report, day by day, whether exactly one person holds each mandatory closing role (1R and 2F) at a site requiring formal closure",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, from, to := args[0], args[1], args[2]

			app.Logger.Debug("closureReport command",
				zap.String("site_id", siteID),
				zap.String("from", from),
				zap.String("to", to))

			result, err := services.ClosureReport(app.Ctx, app.Database, app.Logger, siteID, from, to)
			if err != nil {
				return fmt.Errorf("closure report failed: %w", err)
			}

			fmt.Printf("\n🔒 Closure Report — %s (%s)\n\n", result.SiteName, result.SiteID)

			if !result.NeedsClosure {
				fmt.Printf("Site does not require formal closure; nothing to check.\n\n")
				return nil
			}

			for _, day := range result.Days {
				marker := "✅"
				if !day.Compliant() {
					marker = "❌"
				}
				fmt.Printf("  %s %s  1R unique: %-5v  2F unique: %-5v\n",
					marker, day.Date, day.HasUnique1R, day.HasUnique2F)
			}
			fmt.Println()

			if result.Compliant {
				fmt.Printf("✅ All %d days compliant\n\n", len(result.Days))
				return nil
			}

			fmt.Printf("❌ Issues (%d):\n", len(result.Issues))
			for _, issue := range result.Issues {
				fmt.Printf("  • [%s] %s\n", issue.Kind, issue.Description)
			}
			fmt.Println()

			return nil
		},
	}
}
