package create_booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-TrainingService/internal/infra/storage/slot"
	trainerRepo "github.com/m04kA/SMC-TrainingService/internal/infra/storage/trainer"
	onboardingClient "github.com/m04kA/SMC-TrainingService/internal/integrations/onboardingservice"
)

// fakeLedger in-memory ledger, Create enforces the same uniqueness as the partial unique index
type fakeLedger struct {
	mu     sync.Mutex
	slots  []*domain.TrainingSlot
	nextID int64

	existsErr error
}

func (f *fakeLedger) ExistsBooked(_ context.Context, date time.Time, bucket domain.TimeBucket, trainerID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.bookedLocked(date, bucket, trainerID), nil
}

func (f *fakeLedger) Create(_ context.Context, s *domain.TrainingSlot) (*domain.TrainingSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bookedLocked(s.Date, s.Bucket, s.TrainerID) {
		return nil, fmt.Errorf("%w: Create - execute insert: duplicate key", slotRepo.ErrSlotAlreadyBooked)
	}
	f.nextID++
	cp := *s
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.slots = append(f.slots, &cp)
	return &cp, nil
}

func (f *fakeLedger) bookedLocked(date time.Time, bucket domain.TimeBucket, trainerID int64) bool {
	for _, s := range f.slots {
		if s.IsBooked() && s.Date.Equal(date) && s.Bucket == bucket && s.TrainerID == trainerID {
			return true
		}
	}
	return false
}

func (f *fakeLedger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.slots)
}

type fakeTrainers map[int64]*domain.Trainer

func (f fakeTrainers) GetByID(_ context.Context, id int64) (*domain.Trainer, error) {
	t, ok := f[id]
	if !ok {
		return nil, trainerRepo.ErrTrainerNotFound
	}
	return t, nil
}

type fakeOnboarding map[int64]*domain.OnboardingCase

func (f fakeOnboarding) Get(_ context.Context, id int64) (*domain.OnboardingCase, error) {
	oc, ok := f[id]
	if !ok {
		return nil, onboardingClient.ErrOnboardingNotFound
	}
	return oc, nil
}

// fakeTxManager runs fn directly; commitErr simulates a failure reported on COMMIT
type fakeTxManager struct {
	commitErr error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return m.commitErr
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

type fixedTime time.Time

func (t fixedTime) Now() time.Time { return time.Time(t) }
