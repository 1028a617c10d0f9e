package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/roster"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/db"
)

// PrepareWeekStore defines the store operations PrepareWeek needs
type PrepareWeekStore interface {
	db.NeedStore
	db.CapacityStore
	db.DirectoryStore
}

// PrepareWeekResult reports the slot decomposition of one planning window
type PrepareWeekResult struct {
	From string
	To   string

	NeedSlots     []model.Slot
	CapacitySlots []model.Slot

	// BackupCapacitySlots counts the capacity slots provided by backups
	BackupCapacitySlots int

	// SkippedNeeds / SkippedCapacities count records dropped because their
	// referenced site or person could not be resolved
	SkippedNeeds      int
	SkippedCapacities int
}

// PrepareWeek fetches the need and capacity records for a date range and
// decomposes them into canonical half-day slots, the form every downstream
// consumer (validators, the solver request builder) works with. Records
// referencing unknown sites or people are skipped and counted, never
// partially decomposed.
func PrepareWeek(ctx context.Context, store PrepareWeekStore, logger *zap.Logger, from, to string) (*PrepareWeekResult, error) {
	logger.Info("Preparing planning window", zap.String("from", from), zap.String("to", to))

	needs, err := store.GetNeeds(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch needs: %w", err)
	}
	capacities, err := store.GetCapacities(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch capacities: %w", err)
	}
	logger.Debug("Fetched records",
		zap.Int("needs", len(needs)),
		zap.Int("capacities", len(capacities)))

	decomposer := roster.NewSlotDecomposer(storeDirectory{store}, logger)
	result := &PrepareWeekResult{From: from, To: to}

	for _, record := range needs {
		need := needFromRecord(record)
		slots, err := decomposer.DecomposeNeed(ctx, need)
		if err != nil {
			return nil, err
		}
		if len(slots) == 0 {
			// Zero slots is a valid outcome for records without clinic
			// hours; it only counts as a skip when the window did cover
			// a period and resolution failed.
			if len(roster.PeriodsCovered(need.Start, need.End)) > 0 {
				result.SkippedNeeds++
			}
			continue
		}
		result.NeedSlots = append(result.NeedSlots, slots...)
	}

	for _, record := range capacities {
		capacity := capacityFromRecord(record)
		slots, err := decomposer.DecomposeCapacity(ctx, capacity)
		if err != nil {
			return nil, err
		}
		if len(slots) == 0 {
			if len(roster.PeriodsCovered(capacity.Start, capacity.End)) > 0 {
				result.SkippedCapacities++
			}
			continue
		}
		result.CapacitySlots = append(result.CapacitySlots, slots...)
		if capacity.IsBackup {
			result.BackupCapacitySlots += len(slots)
		}
	}

	logger.Info("Planning window prepared",
		zap.Int("need_slots", len(result.NeedSlots)),
		zap.Int("capacity_slots", len(result.CapacitySlots)),
		zap.Int("backup_capacity_slots", result.BackupCapacitySlots),
		zap.Int("skipped_needs", result.SkippedNeeds),
		zap.Int("skipped_capacities", result.SkippedCapacities))

	return result, nil
}
