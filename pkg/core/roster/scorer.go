package roster

import "github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"

// Classify derives an assignment's fulfillment status from its counts.
// The solver reports its own status field, but this derivation is the
// authoritative one; callers always recompute rather than trusting it.
func Classify(requiredCount, assignedCount int) model.Status {
	switch {
	case assignedCount >= requiredCount:
		return model.StatusSatisfied
	case assignedCount > 0:
		return model.StatusRoundedDown
	default:
		return model.StatusUnsatisfied
	}
}

// BatchStats tallies a classified assignment batch using the solver's own
// reporting vocabulary, so local and remote totals can be compared directly.
type BatchStats struct {
	Satisfait        int
	Partiel          int
	NonSatisfait     int
	SatisfactionRate float64
}

// ClassifyBatch sets the derived Status on every assignment in place and
// returns the resulting tallies
func ClassifyBatch(assignments []model.Assignment) BatchStats {
	var stats BatchStats
	for i := range assignments {
		assignments[i].Status = Classify(assignments[i].RequiredCount, assignments[i].AssignedCount)
		switch assignments[i].Status {
		case model.StatusSatisfied:
			stats.Satisfait++
		case model.StatusRoundedDown:
			stats.Partiel++
		case model.StatusUnsatisfied:
			stats.NonSatisfait++
		}
	}
	if len(assignments) > 0 {
		stats.SatisfactionRate = float64(stats.Satisfait) / float64(len(assignments))
	}
	return stats
}

// PenaltyReport accumulates the three penalty counters used to rank solver
// outputs. They are reported individually for diagnostics and summed only
// for ranking.
type PenaltyReport struct {
	// SiteChanges counts assignments placing a person away from their
	// preferred site
	SiteChanges int
	// MultipleClosures counts days where a closing site has the same
	// closing role held by more than one person
	MultipleClosures int
	// Overflow counts assignments at the flagship site beyond its
	// per-period capacity
	Overflow int
}

// Total is the scalar ranking score; lower is better
func (r PenaltyReport) Total() int {
	return r.SiteChanges + r.MultipleClosures + r.Overflow
}

// ScoreContext carries the reference data ScoreBatch needs: per-person
// preferred sites, the flagship site's id and capacity, and the closure
// day statuses already computed for the batch's closing sites.
type ScoreContext struct {
	PreferredSites   map[string]string // person id -> preferred site id
	FlagshipSiteID   string
	FlagshipCapacity int // per (date, period), 0 = unlimited
	ClosureDays      []model.ClosureDayStatus
}

// ScoreBatch computes the penalty counters over a full assignment batch.
// It is a pure aggregation: one pass over the batch returned by the solver,
// no incremental state.
func ScoreBatch(assignments []model.Assignment, sctx ScoreContext) PenaltyReport {
	var report PenaltyReport

	flagshipLoad := make(map[string]int) // "<date>|<period>" -> assignment count
	for _, assignment := range assignments {
		if assignment.Cancelled {
			continue
		}

		for _, personID := range assignment.PersonIDs {
			preferred, ok := sctx.PreferredSites[personID]
			if ok && preferred != "" && preferred != assignment.SiteID {
				report.SiteChanges++
			}
		}

		if sctx.FlagshipSiteID != "" && assignment.SiteID == sctx.FlagshipSiteID {
			flagshipLoad[assignment.Date+"|"+string(assignment.Period)]++
		}
	}

	if sctx.FlagshipCapacity > 0 {
		for _, load := range flagshipLoad {
			if load > sctx.FlagshipCapacity {
				report.Overflow += load - sctx.FlagshipCapacity
			}
		}
	}

	for _, day := range sctx.ClosureDays {
		if day.Multiple1R || day.Multiple2F || day.Multiple3F {
			report.MultipleClosures++
		}
	}

	return report
}
