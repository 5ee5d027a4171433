package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

type fakeDirectory struct {
	trainers []*domain.Trainer
	err      error
}

func (f *fakeDirectory) FindEligible(_ context.Context, mode domain.TrainingMode, location string, languages []domain.Language) ([]*domain.Trainer, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Trainer, 0)
	for _, t := range f.trainers {
		if t.IsActive() && t.MatchesRequirements(mode, location, languages) {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeSlotRepo struct {
	slots   []*domain.TrainingSlot
	queried []time.Time
}

func (f *fakeSlotRepo) GetBookedByDate(_ context.Context, date time.Time) ([]*domain.TrainingSlot, error) {
	f.queried = append(f.queried, date)
	out := make([]*domain.TrainingSlot, 0)
	for _, s := range f.slots {
		if s.Date.Equal(date) && s.IsBooked() {
			out = append(out, s)
		}
	}
	return out, nil
}
