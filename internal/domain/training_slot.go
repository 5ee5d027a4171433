package domain

import (
	"fmt"
	"strings"
	"time"
)

// TrainingMode how a training session is delivered
type TrainingMode string

const (
	TrainingModeRemote TrainingMode = "remote"
	TrainingModeOnsite TrainingMode = "onsite"
)

// ParseTrainingMode accepts "remote"/"onsite" in any case
func ParseTrainingMode(s string) (TrainingMode, error) {
	switch TrainingMode(strings.ToLower(strings.TrimSpace(s))) {
	case TrainingModeRemote:
		return TrainingModeRemote, nil
	case TrainingModeOnsite:
		return TrainingModeOnsite, nil
	}
	return "", fmt.Errorf("%w: unknown training mode %q", ErrInvalidInput, s)
}

// Title returns the human-readable form used in messages
func (m TrainingMode) Title() string {
	switch m {
	case TrainingModeRemote:
		return "Remote"
	case TrainingModeOnsite:
		return "Onsite"
	}
	return string(m)
}

// SlotStatus represents the status of a training slot
type SlotStatus string

const (
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusCompleted SlotStatus = "completed"
	SlotStatusCancelled SlotStatus = "cancelled"
)

// IsValid returns true for a known status
func (s SlotStatus) IsValid() bool {
	return s == SlotStatusBooked || s == SlotStatusCompleted || s == SlotStatusCancelled
}

// IsTerminal returns true for statuses without outgoing transitions
func (s SlotStatus) IsTerminal() bool {
	return s == SlotStatusCompleted || s == SlotStatusCancelled
}

// TrainingSlot a booked training occurrence in the slot ledger
type TrainingSlot struct {
	ID                int64
	OnboardingID      int64
	TrainerID         int64
	Date              time.Time // date only, UTC
	Bucket            TimeBucket
	Mode              TrainingMode
	Location          *string // set only for onsite training
	RequiredLanguages []Language
	Status            SlotStatus

	CancelledAt *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsBooked returns true while the slot occupies its trainer
func (s *TrainingSlot) IsBooked() bool {
	return s.Status == SlotStatusBooked
}

// CanTransitionTo returns true for booked -> completed and booked -> cancelled
func (s *TrainingSlot) CanTransitionTo(next SlotStatus) bool {
	return s.Status == SlotStatusBooked && next.IsTerminal()
}

// SlotFilter фильтр выборки слотов из ledger
type SlotFilter struct {
	OnboardingID *int64
	TrainerID    *int64
	StartDate    *time.Time
	EndDate      *time.Time
	Status       *SlotStatus
}
