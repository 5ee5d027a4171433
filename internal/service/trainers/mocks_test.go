package trainers

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	trainerRepo "github.com/m04kA/SMC-TrainingService/internal/infra/storage/trainer"
)

type fakeTrainerRepo struct {
	mu       sync.Mutex
	trainers []*domain.Trainer
	nextID   int64
	err      error
}

func (f *fakeTrainerRepo) Create(_ context.Context, t *domain.Trainer) (*domain.Trainer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	t.ID = f.nextID
	f.trainers = append(f.trainers, t)
	return t, nil
}

func (f *fakeTrainerRepo) GetByID(_ context.Context, id int64) (*domain.Trainer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.trainers {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, trainerRepo.ErrTrainerNotFound
}

func (f *fakeTrainerRepo) List(_ context.Context, status *domain.TrainerStatus) ([]*domain.Trainer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Trainer, 0, len(f.trainers))
	for _, t := range f.trainers {
		if status == nil || t.Status == *status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTrainerRepo) ListActive(ctx context.Context) ([]*domain.Trainer, error) {
	if f.err != nil {
		return nil, f.err
	}
	active := domain.TrainerStatusActive
	return f.List(ctx, &active)
}

func (f *fakeTrainerRepo) UpdateStatus(_ context.Context, id int64, status domain.TrainerStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.trainers {
		if t.ID == id {
			t.Status = status
			return nil
		}
	}
	return trainerRepo.ErrTrainerNotFound
}
