package slots

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-TrainingService/internal/infra/storage/slot"
)

type fakeSlotRepo struct {
	mu          sync.Mutex
	slots       map[int64]*domain.TrainingSlot
	transitions int
}

func newFakeSlotRepo(slots ...*domain.TrainingSlot) *fakeSlotRepo {
	f := &fakeSlotRepo{slots: make(map[int64]*domain.TrainingSlot, len(slots))}
	for _, s := range slots {
		f.slots[s.ID] = s
	}
	return f
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TrainingSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSlotRepo) GetWithFilter(_ context.Context, filter domain.SlotFilter) ([]*domain.TrainingSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.TrainingSlot, 0)
	for id := int64(1); id <= int64(len(f.slots)); id++ {
		s, ok := f.slots[id]
		if !ok {
			continue
		}
		if filter.OnboardingID != nil && s.OnboardingID != *filter.OnboardingID {
			continue
		}
		if filter.TrainerID != nil && s.TrainerID != *filter.TrainerID {
			continue
		}
		if filter.StartDate != nil && s.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && s.Date.After(*filter.EndDate) {
			continue
		}
		if filter.Status != nil && s.Status != *filter.Status {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeSlotRepo) TransitionStatus(_ context.Context, id int64, from, to domain.SlotStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if s.Status != from {
		return slotRepo.ErrStatusMismatch
	}
	now := time.Now()
	s.Status = to
	switch to {
	case domain.SlotStatusCancelled:
		s.CancelledAt = &now
	case domain.SlotStatusCompleted:
		s.CompletedAt = &now
	}
	f.transitions++
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
