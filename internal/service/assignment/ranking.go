package assignment

import (
	"sort"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
)

// RankByWeeklyLoad упорядочивает пул по числу booked-слотов за неделю (по возрастанию).
// При равенстве сохраняется порядок входного пула.
func RankByWeeklyLoad(pool []*domain.Trainer, counts map[int64]int) []*domain.Trainer {
	ranked := make([]*domain.Trainer, len(pool))
	copy(ranked, pool)

	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i].ID] < counts[ranked[j].ID]
	})
	return ranked
}

// RankByRecency упорядочивает пул по (общее число назначений ASC, время последнего назначения ASC).
// Тренер без назначений считается ожидающим дольше всех.
func RankByRecency(pool []*domain.Trainer, stats map[int64]domain.AssignmentStats) []*domain.Trainer {
	ranked := make([]*domain.Trainer, len(pool))
	copy(ranked, pool)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := stats[ranked[i].ID], stats[ranked[j].ID]
		if a.BookedCount != b.BookedCount {
			return a.BookedCount < b.BookedCount
		}
		switch {
		case a.LastAssignedAt == nil && b.LastAssignedAt == nil:
			return false
		case a.LastAssignedAt == nil:
			return true
		case b.LastAssignedAt == nil:
			return false
		}
		return a.LastAssignedAt.Before(*b.LastAssignedAt)
	})
	return ranked
}

func trainerIDs(pool []*domain.Trainer) []int64 {
	ids := make([]int64, len(pool))
	for i, t := range pool {
		ids[i] = t.ID
	}
	return ids
}
