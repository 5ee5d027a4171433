package get_available_slots

import (
	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// calculateAvailability для каждого слота каталога вычитает из пула тренеров,
// уже занятых в этом слоте. Слоты без свободных тренеров не попадают в результат.
func calculateAvailability(pool []*domain.Trainer, booked []*domain.TrainingSlot) []Slot {
	slots := make([]Slot, 0)
	if len(pool) == 0 {
		return slots
	}

	idx := domain.NewBookedIndex(booked)
	for _, bucket := range domain.Buckets() {
		free := idx.Free(bucket, pool)
		if len(free) == 0 {
			continue
		}
		slots = append(slots, Slot{Bucket: bucket, Trainers: free})
	}

	return slots
}
