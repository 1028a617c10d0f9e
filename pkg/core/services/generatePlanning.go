package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/internal/config"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/clients/solverclient"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/roster"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/db"
)

// GeneratePlanningStore defines the store operations GeneratePlanning needs
type GeneratePlanningStore interface {
	db.DirectoryStore
	db.AssignmentStore
	db.ClaimStore
}

// PlanningSolver abstracts the remote optimizer so tests can stub it with
// deterministic batches
type PlanningSolver interface {
	GeneratePlanning(ctx context.Context, request solverclient.PlanningRequest) (*solverclient.PlanningResponse, error)
}

// GeneratePlanningResult is the full post-solve quality report for one week
type GeneratePlanningResult struct {
	Dates       []string
	Assignments []model.Assignment

	// Stats is the locally derived classification; SolverStats is what the
	// optimizer claimed. StatsDiverge flags any disagreement between them.
	Stats        roster.BatchStats
	SolverStats  solverclient.Stats
	StatsDiverge bool

	// Closure coverage per closing site in the batch
	ClosureStatuses map[string][]model.ClosureDayStatus
	ClosureIssues   map[string][]roster.ClosureIssue

	Penalties roster.PenaltyReport

	// Committed is true when the batch and its claims were persisted
	Committed bool
}

// GeneratePlanning expands the planning week, submits it to the remote
// optimizer, and re-derives every quality signal locally: per-assignment
// status from the counts, closure coverage for closing sites, and the
// penalty counters. With commit set, the accepted batch and its half-day
// claims are persisted; a claim rejected by the unique key surfaces as
// db.ErrDuplicateClaim so the caller can tell a lost race from a failure.
func GeneratePlanning(ctx context.Context, store GeneratePlanningStore, solver PlanningSolver, cfg *config.Config, logger *zap.Logger, weekStart string, minimizeChanges bool, flexibleOverrides map[string]bool, commit bool) (*GeneratePlanningResult, error) {
	dates, err := weekDates(weekStart, cfg.WeekRule)
	if err != nil {
		return nil, err
	}

	logger.Info("Requesting planning from solver",
		zap.Strings("dates", dates),
		zap.Bool("minimize_changes", minimizeChanges))

	response, err := solver.GeneratePlanning(ctx, solverclient.PlanningRequest{
		Dates:             dates,
		MinimizeChanges:   minimizeChanges,
		FlexibleOverrides: flexibleOverrides,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate planning: %w", err)
	}

	assignments := make([]model.Assignment, 0, len(response.Assignments))
	for _, record := range response.Assignments {
		assignments = append(assignments, model.Assignment{
			NeedSlotID:    record.NeedSlotID,
			Date:          record.Date,
			Period:        model.Period(record.Period),
			SiteID:        record.SiteID,
			PersonIDs:     record.PersonIDs,
			RequiredCount: record.RequiredCount,
			AssignedCount: record.AssignedCount,
			Is1R:          record.Is1R,
			Is2F:          record.Is2F,
			Is3F:          record.Is3F,
			Cancelled:     record.Cancelled,
		})
	}

	result := &GeneratePlanningResult{
		Dates:           dates,
		Assignments:     assignments,
		SolverStats:     response.Stats,
		ClosureStatuses: make(map[string][]model.ClosureDayStatus),
		ClosureIssues:   make(map[string][]roster.ClosureIssue),
	}

	// Always recompute statuses from counts; the solver's own field is
	// only used for the divergence cross-check.
	result.Stats = roster.ClassifyBatch(result.Assignments)
	if result.Stats.Satisfait != response.Stats.Satisfait ||
		result.Stats.Partiel != response.Stats.Partiel ||
		result.Stats.NonSatisfait != response.Stats.NonSatisfait {
		result.StatsDiverge = true
		logger.Warn("Solver stats diverge from locally derived classification",
			zap.Int("local_satisfait", result.Stats.Satisfait),
			zap.Int("solver_satisfait", response.Stats.Satisfait),
			zap.Int("local_partiel", result.Stats.Partiel),
			zap.Int("solver_partiel", response.Stats.Partiel),
			zap.Int("local_non_satisfait", result.Stats.NonSatisfait),
			zap.Int("solver_non_satisfait", response.Stats.NonSatisfait))
	}

	// Closure coverage for every closing site present in the batch
	bySite := make(map[string][]model.Assignment)
	for _, assignment := range result.Assignments {
		bySite[assignment.SiteID] = append(bySite[assignment.SiteID], assignment)
	}

	var closureDays []model.ClosureDayStatus
	var flagshipCapacity int
	for siteID, siteAssignments := range bySite {
		site, err := store.GetSite(ctx, siteID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve site %s: %w", siteID, err)
		}
		if site == nil {
			logger.Warn("Solver returned assignments for unknown site", zap.String("site_id", siteID))
			continue
		}
		if site.ID == cfg.FlagshipSiteID {
			flagshipCapacity = site.Capacity
		}
		if !site.RequiresClosure {
			continue
		}
		statuses := roster.EvaluateClosure(dates, siteAssignments)
		result.ClosureStatuses[siteID] = statuses
		closureDays = append(closureDays, statuses...)
		if issues := roster.ClosureIssues(statuses); len(issues) > 0 {
			result.ClosureIssues[siteID] = issues
		}
	}

	preferredSites, err := preferredSitesForBatch(ctx, store, result.Assignments)
	if err != nil {
		return nil, err
	}

	result.Penalties = roster.ScoreBatch(result.Assignments, roster.ScoreContext{
		PreferredSites:   preferredSites,
		FlagshipSiteID:   cfg.FlagshipSiteID,
		FlagshipCapacity: flagshipCapacity,
		ClosureDays:      closureDays,
	})

	logger.Info("Planning scored",
		zap.Int("assignments", len(result.Assignments)),
		zap.Int("satisfait", result.Stats.Satisfait),
		zap.Int("partiel", result.Stats.Partiel),
		zap.Int("non_satisfait", result.Stats.NonSatisfait),
		zap.Int("penalty_total", result.Penalties.Total()))

	if commit {
		if err := commitPlanning(ctx, store, result.Assignments); err != nil {
			return nil, err
		}
		result.Committed = true
		logger.Info("Planning committed", zap.Int("assignments", len(result.Assignments)))
	}

	return result, nil
}

// preferredSitesForBatch resolves the preferred site of every person in the
// batch. People the directory does not know are left out of the map, which
// keeps them out of the site-change counter.
func preferredSitesForBatch(ctx context.Context, store db.DirectoryStore, assignments []model.Assignment) (map[string]string, error) {
	preferred := make(map[string]string)
	seen := make(map[string]bool)
	for _, assignment := range assignments {
		for _, personID := range assignment.PersonIDs {
			if seen[personID] {
				continue
			}
			seen[personID] = true
			person, err := store.GetPerson(ctx, personID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve person %s: %w", personID, err)
			}
			if person == nil || person.PreferredSiteID == "" {
				continue
			}
			preferred[personID] = person.PreferredSiteID
		}
	}
	return preferred, nil
}

// commitPlanning persists the batch and the half-day claims it implies.
// One claim per distinct (person, date, period); the claim table's unique
// key is the real guard against concurrent double-booking.
func commitPlanning(ctx context.Context, store GeneratePlanningStore, assignments []model.Assignment) error {
	records := make([]db.Assignment, 0, len(assignments))
	var claims []db.Claim
	claimed := make(map[string]bool)

	for _, assignment := range assignments {
		records = append(records, db.Assignment{
			ID:            uuid.New().String(),
			NeedSlotID:    assignment.NeedSlotID,
			Day:           assignment.Date,
			Period:        string(assignment.Period),
			SiteID:        assignment.SiteID,
			PersonIDs:     assignment.PersonIDs,
			RequiredCount: assignment.RequiredCount,
			AssignedCount: assignment.AssignedCount,
			Is1R:          assignment.Is1R,
			Is2F:          assignment.Is2F,
			Is3F:          assignment.Is3F,
			Cancelled:     assignment.Cancelled,
		})

		if assignment.Cancelled {
			continue
		}
		for _, personID := range assignment.PersonIDs {
			key := personID + "|" + assignment.Date + "|" + string(assignment.Period)
			if claimed[key] {
				continue
			}
			claimed[key] = true
			claims = append(claims, db.Claim{
				ID:       uuid.New().String(),
				PersonID: personID,
				Day:      assignment.Date,
				Period:   string(assignment.Period),
			})
		}
	}

	if err := store.InsertAssignments(ctx, records); err != nil {
		return fmt.Errorf("failed to persist assignments: %w", err)
	}
	if err := store.InsertClaims(ctx, claims); err != nil {
		return fmt.Errorf("failed to persist claims: %w", err)
	}
	return nil
}
