package domain

import (
	"fmt"
	"time"
)

// SelectionStrategy name of a trainer selection policy used by auto-assign
type SelectionStrategy string

const (
	// StrategyWeeklyLoad picks the trainer with the fewest booked slots in the reference week
	StrategyWeeklyLoad SelectionStrategy = "weekly_load"
	// StrategyLeastRecent picks by all-time booked count, then by oldest last assignment
	StrategyLeastRecent SelectionStrategy = "least_recent"
)

// ParseSelectionStrategy validates s
func ParseSelectionStrategy(s string) (SelectionStrategy, error) {
	switch SelectionStrategy(s) {
	case StrategyWeeklyLoad:
		return StrategyWeeklyLoad, nil
	case StrategyLeastRecent:
		return StrategyLeastRecent, nil
	}
	return "", fmt.Errorf("%w: unknown selection strategy %q", ErrInvalidInput, s)
}

// AssignmentStats all-time booked assignment counters of one trainer
type AssignmentStats struct {
	TrainerID      int64
	BookedCount    int
	LastAssignedAt *time.Time // nil when the trainer was never assigned
}
