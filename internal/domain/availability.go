package domain

// BookedIndex занятость тренеров по временным слотам одной даты
type BookedIndex map[TimeBucket]map[int64]struct{}

// NewBookedIndex builds the index from ledger slots; only Booked slots occupy a trainer.
func NewBookedIndex(slots []*TrainingSlot) BookedIndex {
	idx := make(BookedIndex)
	for _, s := range slots {
		if !s.IsBooked() {
			continue
		}
		trainers, ok := idx[s.Bucket]
		if !ok {
			trainers = make(map[int64]struct{})
			idx[s.Bucket] = trainers
		}
		trainers[s.TrainerID] = struct{}{}
	}
	return idx
}

// IsBooked reports whether trainerID already holds a Booked slot at bucket
func (idx BookedIndex) IsBooked(bucket TimeBucket, trainerID int64) bool {
	_, ok := idx[bucket][trainerID]
	return ok
}

// Free returns the pool members not booked at bucket, keeping pool order
func (idx BookedIndex) Free(bucket TimeBucket, pool []*Trainer) []*Trainer {
	free := make([]*Trainer, 0, len(pool))
	for _, t := range pool {
		if !idx.IsBooked(bucket, t.ID) {
			free = append(free, t)
		}
	}
	return free
}
