package auto_assign_booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-TrainingService/internal/infra/storage/slot"
	onboardingClient "github.com/m04kA/SMC-TrainingService/internal/integrations/onboardingservice"
)

// fakeLedger in-memory ledger; also serves assignment statistics to the real selector registry
type fakeLedger struct {
	mu     sync.Mutex
	slots  []*domain.TrainingSlot
	nextID int64

	bookedErr error
	countErr  error
	statsErr  error
}

func (f *fakeLedger) seed(trainerID int64, date time.Time, bucket domain.TimeBucket) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.slots = append(f.slots, &domain.TrainingSlot{
		ID:        f.nextID,
		TrainerID: trainerID,
		Date:      date,
		Bucket:    bucket,
		Mode:      domain.TrainingModeRemote,
		Status:    domain.SlotStatusBooked,
		CreatedAt: date.Add(-time.Duration(f.nextID) * time.Hour),
	})
}

func (f *fakeLedger) GetBookedByDate(_ context.Context, date time.Time) ([]*domain.TrainingSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bookedErr != nil {
		return nil, f.bookedErr
	}
	var out []*domain.TrainingSlot
	for _, s := range f.slots {
		if s.IsBooked() && s.Date.Equal(date) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeLedger) Create(_ context.Context, s *domain.TrainingSlot) (*domain.TrainingSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.slots {
		if b.IsBooked() && b.Date.Equal(s.Date) && b.Bucket == s.Bucket && b.TrainerID == s.TrainerID {
			return nil, fmt.Errorf("%w: Create - execute insert: duplicate key", slotRepo.ErrSlotAlreadyBooked)
		}
	}
	f.nextID++
	cp := *s
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.slots = append(f.slots, &cp)
	return &cp, nil
}

func (f *fakeLedger) CountBookedByTrainers(_ context.Context, ids []int64, from, to time.Time) (map[int64]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return nil, f.countErr
	}
	counts := make(map[int64]int, len(ids))
	for _, id := range ids {
		for _, s := range f.slots {
			if s.IsBooked() && s.TrainerID == id && !s.Date.Before(from) && !s.Date.After(to) {
				counts[id]++
			}
		}
	}
	return counts, nil
}

func (f *fakeLedger) GetAssignmentStats(_ context.Context, ids []int64) (map[int64]domain.AssignmentStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	stats := make(map[int64]domain.AssignmentStats, len(ids))
	for _, id := range ids {
		st := domain.AssignmentStats{TrainerID: id}
		for _, s := range f.slots {
			if !s.IsBooked() || s.TrainerID != id {
				continue
			}
			st.BookedCount++
			if st.LastAssignedAt == nil || s.CreatedAt.After(*st.LastAssignedAt) {
				at := s.CreatedAt
				st.LastAssignedAt = &at
			}
		}
		stats[id] = st
	}
	return stats, nil
}

func (f *fakeLedger) bookedTrainers(date time.Time, bucket domain.TimeBucket) []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []int64
	for _, s := range f.slots {
		if s.IsBooked() && s.Date.Equal(date) && s.Bucket == bucket {
			ids = append(ids, s.TrainerID)
		}
	}
	return ids
}

// fakeDirectory mirrors trainers.Service.FindEligible over a fixed list
type fakeDirectory []*domain.Trainer

func (f fakeDirectory) FindEligible(_ context.Context, mode domain.TrainingMode, location string, languages []domain.Language) ([]*domain.Trainer, error) {
	var out []*domain.Trainer
	for _, t := range f {
		if t.IsActive() && t.MatchesRequirements(mode, location, languages) {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeOnboarding map[int64]*domain.OnboardingCase

func (f fakeOnboarding) Get(_ context.Context, id int64) (*domain.OnboardingCase, error) {
	oc, ok := f[id]
	if !ok {
		return nil, onboardingClient.ErrOnboardingNotFound
	}
	return oc, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (m *fakeMetrics) RecordBooking(flow, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = make(map[string]int)
	}
	m.outcomes[flow+"/"+outcome]++
}

func (m *fakeMetrics) get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.outcomes[key]
}

type fixedTime time.Time

func (t fixedTime) Now() time.Time { return time.Time(t) }
