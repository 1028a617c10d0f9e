package roster

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"
)

// SiteInfo is the directory's view of a clinic site
type SiteInfo struct {
	ID              string
	Name            string
	RequiresClosure bool
	IsFlagship      bool
	Capacity        int // per-period assignment capacity, 0 = unlimited
}

// PersonInfo is the directory's view of a staff member or backup
type PersonInfo struct {
	ID              string
	Name            string
	PreferredSiteID string
}

// Directory looks up sites and people referenced by need/capacity records.
// A nil result with a nil error means the record does not exist; that is a
// valid outcome, distinct from a lookup failure.
type Directory interface {
	GetSite(ctx context.Context, id string) (*SiteInfo, error)
	GetPerson(ctx context.Context, id string) (*PersonInfo, error)
}

// SlotDecomposer expands need and capacity records into canonical half-day
// slots. A record overlapping both clinic periods yields two slots, one
// inside a single period yields one, and one entirely outside clinic hours
// yields none. Records referencing an unknown site or person are skipped
// whole and logged; no partial slot is ever produced.
type SlotDecomposer struct {
	directory Directory
	logger    *zap.Logger
}

// NewSlotDecomposer creates a decomposer using the given directory for
// site/person resolution
func NewSlotDecomposer(directory Directory, logger *zap.Logger) *SlotDecomposer {
	return &SlotDecomposer{
		directory: directory,
		logger:    logger,
	}
}

// DecomposeNeed expands a need into 0-2 slots, resolving the referenced
// site's display name and closure flag. Returns nil slots without error when
// the site cannot be resolved (the record is skipped) or when the need's
// window misses both clinic periods.
func (d *SlotDecomposer) DecomposeNeed(ctx context.Context, need model.Need) ([]model.Slot, error) {
	periods := PeriodsCovered(need.Start, need.End)
	if len(periods) == 0 {
		return nil, nil
	}

	site, err := d.directory.GetSite(ctx, need.SiteID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve site %s: %w", need.SiteID, err)
	}
	if site == nil {
		d.logger.Warn("Skipping need with unresolvable site",
			zap.String("need_id", need.ID),
			zap.String("site_id", need.SiteID))
		return nil, nil
	}

	slots := make([]model.Slot, 0, len(periods))
	for _, period := range periods {
		slots = append(slots, model.Slot{
			ID:                  slotID(need.ID, period),
			SourceID:            need.ID,
			Source:              model.SlotSourceNeed,
			Date:                need.Date,
			Period:              period,
			SiteID:              need.SiteID,
			SiteName:            site.Name,
			SiteRequiresClosure: site.RequiresClosure,
			SpecialtyID:         need.SpecialtyID,
			Kind:                need.Kind,
			RequiredRole:        need.RequiredRole,
			PersonID:            need.PersonID,
		})
	}
	return slots, nil
}

// DecomposeCapacity expands a capacity into 0-2 slots, resolving the acting
// person's display name and site preference. Returns nil slots without error
// when the person cannot be resolved or the window misses both periods.
func (d *SlotDecomposer) DecomposeCapacity(ctx context.Context, capacity model.Capacity) ([]model.Slot, error) {
	periods := PeriodsCovered(capacity.Start, capacity.End)
	if len(periods) == 0 {
		return nil, nil
	}

	person, err := d.directory.GetPerson(ctx, capacity.PersonID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve person %s: %w", capacity.PersonID, err)
	}
	if person == nil {
		d.logger.Warn("Skipping capacity with unresolvable person",
			zap.String("capacity_id", capacity.ID),
			zap.String("person_id", capacity.PersonID))
		return nil, nil
	}

	slots := make([]model.Slot, 0, len(periods))
	for _, period := range periods {
		slots = append(slots, model.Slot{
			ID:                   slotID(capacity.ID, period),
			SourceID:             capacity.ID,
			Source:               model.SlotSourceCapacity,
			Date:                 capacity.Date,
			Period:               period,
			PersonID:             capacity.PersonID,
			PersonName:           person.Name,
			SiteID:               person.PreferredSiteID,
			IsBackup:             capacity.IsBackup,
			Specialties:          capacity.Specialties,
			PrefersAlternateSite: capacity.PrefersAlternateSite,
		})
	}
	return slots, nil
}

// PeriodsCovered returns the clinic periods a record's [start, end) window
// overlaps, in canonical order. Records with missing or unparsable times
// cover nothing: pure-administrative entries carry no clinic hours and
// legitimately decompose to zero slots.
func PeriodsCovered(start, end string) []model.Period {
	if start == "" || end == "" {
		return nil
	}
	startMin, err := ParseClock(start)
	if err != nil {
		return nil
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return nil
	}

	var periods []model.Period
	for _, period := range model.AllPeriods {
		periodStart, periodEnd := period.Bounds()
		if Overlaps(startMin, endMin, periodStart, periodEnd) {
			periods = append(periods, period)
		}
	}
	return periods
}

// slotID builds the deterministic slot identifier "<source_id>-<period>".
// Re-decomposition of the same record always yields the same ids.
func slotID(sourceID string, period model.Period) string {
	return fmt.Sprintf("%s-%s", sourceID, period)
}
