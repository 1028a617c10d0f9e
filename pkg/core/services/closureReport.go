package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/roster"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/db"
)

// ClosureReportStore defines the store operations ClosureReport needs
type ClosureReportStore interface {
	db.DirectoryStore
	db.AssignmentStore
}

// ClosureReportResult is the weekly closure compliance report for one site
type ClosureReportResult struct {
	SiteID   string
	SiteName string

	// NeedsClosure comes from the site's configuration; when false the
	// day statuses are not computed
	NeedsClosure bool

	Days   []model.ClosureDayStatus
	Issues []roster.ClosureIssue

	// Compliant is the conjunction over all days in the range
	Compliant bool
}

// ClosureReport evaluates closing-responsibility coverage for one site over
// an inclusive date range. A single non-compliant day marks the whole range,
// and each failing day and marker is listed so operators can distinguish
// understaffed from overstaffed days.
func ClosureReport(ctx context.Context, store ClosureReportStore, logger *zap.Logger, siteID, from, to string) (*ClosureReportResult, error) {
	site, err := store.GetSite(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve site %s: %w", siteID, err)
	}
	if site == nil {
		return nil, fmt.Errorf("site %s not found", siteID)
	}

	result := &ClosureReportResult{
		SiteID:       site.ID,
		SiteName:     site.Name,
		NeedsClosure: site.RequiresClosure,
	}

	if !site.RequiresClosure {
		logger.Info("Site does not require formal closure",
			zap.String("site_id", siteID),
			zap.String("site_name", site.Name))
		result.Compliant = true
		return result, nil
	}

	days, err := dateRange(from, to)
	if err != nil {
		return nil, err
	}

	records, err := store.GetAssignments(ctx, siteID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	assignments := make([]model.Assignment, 0, len(records))
	for _, record := range records {
		assignments = append(assignments, assignmentFromRecord(record))
	}

	result.Days = roster.EvaluateClosure(days, assignments)
	result.Issues = roster.ClosureIssues(result.Days)
	result.Compliant = len(result.Issues) == 0

	logger.Info("Closure report computed",
		zap.String("site_id", siteID),
		zap.Int("days", len(result.Days)),
		zap.Int("issues", len(result.Issues)),
		zap.Bool("compliant", result.Compliant))

	return result, nil
}
