package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/roster"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/db"
)

const dayFormat = "2006-01-02"

// weekDates expands a week start date into the planning days using the
// configured recurrence rule
func weekDates(weekStart, weekRule string) ([]string, error) {
	start, err := time.Parse(dayFormat, weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to parse week start date: %w", err)
	}

	option, err := rrule.StrToROption(weekRule)
	if err != nil {
		return nil, fmt.Errorf("failed to parse week rule: %w", err)
	}
	option.Dtstart = start

	rule, err := rrule.NewRRule(*option)
	if err != nil {
		return nil, fmt.Errorf("failed to build week rule: %w", err)
	}

	occurrences := rule.Between(start, start.AddDate(0, 0, 6), true)
	if len(occurrences) == 0 {
		return nil, fmt.Errorf("week rule yields no days from %s", weekStart)
	}

	dates := make([]string, 0, len(occurrences))
	for _, occurrence := range occurrences {
		dates = append(dates, occurrence.Format(dayFormat))
	}
	return dates, nil
}

// dateRange lists every day in the inclusive range [from, to]
func dateRange(from, to string) ([]string, error) {
	start, err := time.Parse(dayFormat, from)
	if err != nil {
		return nil, fmt.Errorf("failed to parse range start: %w", err)
	}
	end, err := time.Parse(dayFormat, to)
	if err != nil {
		return nil, fmt.Errorf("failed to parse range end: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("range end %s is before start %s", to, from)
	}

	var dates []string
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day.Format(dayFormat))
	}
	return dates, nil
}

// storeDirectory adapts a db.DirectoryStore to the engine's Directory interface
type storeDirectory struct {
	store db.DirectoryStore
}

func (d storeDirectory) GetSite(ctx context.Context, id string) (*roster.SiteInfo, error) {
	site, err := d.store.GetSite(ctx, id)
	if err != nil || site == nil {
		return nil, err
	}
	return &roster.SiteInfo{
		ID:              site.ID,
		Name:            site.Name,
		RequiresClosure: site.RequiresClosure,
		IsFlagship:      site.IsFlagship,
		Capacity:        site.Capacity,
	}, nil
}

func (d storeDirectory) GetPerson(ctx context.Context, id string) (*roster.PersonInfo, error) {
	person, err := d.store.GetPerson(ctx, id)
	if err != nil || person == nil {
		return nil, err
	}
	return &roster.PersonInfo{
		ID:              person.ID,
		Name:            person.Name,
		PreferredSiteID: person.PreferredSiteID,
	}, nil
}

// storeClaims adapts a db.ClaimStore to the engine's ClaimsStore interface
type storeClaims struct {
	store db.ClaimStore
}

func (c storeClaims) GetClaimedPeriods(ctx context.Context, personID, date string) ([]model.Period, error) {
	claims, err := c.store.GetClaims(ctx, personID, date)
	if err != nil {
		return nil, err
	}
	periods := make([]model.Period, 0, len(claims))
	for _, claim := range claims {
		periods = append(periods, model.Period(claim.Period))
	}
	return periods, nil
}

// needFromRecord converts a stored need row to the engine's input type
func needFromRecord(record db.Need) model.Need {
	return model.Need{
		ID:           record.ID,
		Date:         record.Day,
		SiteID:       record.SiteID,
		Start:        record.StartTime,
		End:          record.EndTime,
		SpecialtyID:  record.SpecialtyID,
		Kind:         model.NeedKind(record.Kind),
		PersonID:     record.PersonID,
		RequiredRole: model.RoleCode(record.RequiredRole),
	}
}

// capacityFromRecord converts a stored capacity row to the engine's input type
func capacityFromRecord(record db.Capacity) model.Capacity {
	return model.Capacity{
		ID:                   record.ID,
		Date:                 record.Day,
		Start:                record.StartTime,
		End:                  record.EndTime,
		PersonID:             record.PersonID,
		IsBackup:             record.IsBackup,
		Specialties:          record.Specialties,
		PrefersAlternateSite: record.PrefersAlternateSite,
	}
}

// assignmentFromRecord converts a stored assignment row to the engine type
func assignmentFromRecord(record db.Assignment) model.Assignment {
	return model.Assignment{
		NeedSlotID:    record.NeedSlotID,
		Date:          record.Day,
		Period:        model.Period(record.Period),
		SiteID:        record.SiteID,
		PersonIDs:     record.PersonIDs,
		RequiredCount: record.RequiredCount,
		AssignedCount: record.AssignedCount,
		Is1R:          record.Is1R,
		Is2F:          record.Is2F,
		Is3F:          record.Is3F,
		Cancelled:     record.Cancelled,
	}
}
