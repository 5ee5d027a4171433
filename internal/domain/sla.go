package domain

import "fmt"

// Milestone onboarding service category with a configured business-day window
type Milestone string

const (
	MilestoneHardwareDelivery     Milestone = "hardware_delivery"
	MilestoneHardwareInstallation Milestone = "hardware_installation"
	MilestoneRemoteTraining       Milestone = "remote_training"
	MilestoneOnsiteTraining       Milestone = "onsite_training"
)

// Milestones all known milestone categories
var Milestones = []Milestone{
	MilestoneHardwareDelivery,
	MilestoneHardwareInstallation,
	MilestoneRemoteTraining,
	MilestoneOnsiteTraining,
}

// ParseMilestone validates s against Milestones
func ParseMilestone(s string) (Milestone, error) {
	for _, m := range Milestones {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: unknown milestone %q", ErrInvalidInput, s)
}

// SLAWindow {min, max} business days relative to a prerequisite event
type SLAWindow struct {
	MinDays int
	MaxDays int
}

// Validate checks that the window is non-negative and ordered
func (w SLAWindow) Validate() error {
	if w.MinDays < 0 || w.MaxDays < 0 {
		return fmt.Errorf("%w: SLA window must be non-negative", ErrInvalidInput)
	}
	if w.MinDays > w.MaxDays {
		return fmt.Errorf("%w: SLA window min %d exceeds max %d", ErrInvalidInput, w.MinDays, w.MaxDays)
	}
	return nil
}

// SLATable immutable mapping milestone -> window
type SLATable map[Milestone]SLAWindow
