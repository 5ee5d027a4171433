package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	"github.com/m04kA/SMC-TrainingService/pkg/logger"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func trainer(id int64, locations []string, langs ...domain.Language) *domain.Trainer {
	return &domain.Trainer{ID: id, Locations: locations, Languages: langs, Status: domain.TrainerStatusActive}
}

func bucketsOf(slots []Slot) []domain.TimeBucket {
	out := make([]domain.TimeBucket, len(slots))
	for i, s := range slots {
		out[i] = s.Bucket
	}
	return out
}

func TestUseCase_Execute_SubtractsBookedTrainers(t *testing.T) {
	day := date(2025, time.March, 3)
	dir := &fakeDirectory{trainers: []*domain.Trainer{
		trainer(1, []string{"Kuala Lumpur"}, domain.LanguageEnglish),
		trainer(2, []string{"Selangor"}, domain.LanguageEnglish),
	}}
	repo := &fakeSlotRepo{slots: []*domain.TrainingSlot{
		{TrainerID: 1, Date: day, Bucket: "09:00", Status: domain.SlotStatusBooked},
		{TrainerID: 2, Date: day, Bucket: "09:00", Status: domain.SlotStatusBooked},
		{TrainerID: 1, Date: day, Bucket: "14:00", Status: domain.SlotStatusBooked},
		{TrainerID: 2, Date: day, Bucket: "14:00", Status: domain.SlotStatusCancelled},
		{TrainerID: 2, Date: day.AddDate(0, 0, 1), Bucket: "09:30", Status: domain.SlotStatusBooked},
	}}
	uc := NewUseCase(dir, repo, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: day, Mode: domain.TrainingModeRemote})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 11, "09:00 is fully booked")
	assert.NotContains(t, bucketsOf(resp.Slots), domain.TimeBucket("09:00"))

	for _, s := range resp.Slots {
		if s.Bucket == "14:00" {
			require.Len(t, s.Trainers, 1)
			assert.Equal(t, int64(2), s.Trainers[0].ID)
		}
		if s.Bucket == "09:30" {
			assert.Len(t, s.Trainers, 2, "bookings on other dates do not count")
		}
	}
}

func TestUseCase_Execute_NoMatchingTrainers(t *testing.T) {
	// Onsite/Selangor/Malay против справочника только с тренерами из Penang
	dir := &fakeDirectory{trainers: []*domain.Trainer{
		trainer(1, []string{"Penang"}, domain.LanguageMalay),
		trainer(2, []string{"Penang Island"}, domain.LanguageMalay, domain.LanguageEnglish),
	}}
	repo := &fakeSlotRepo{}
	uc := NewUseCase(dir, repo, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      date(2025, time.March, 1),
		Mode:      domain.TrainingModeOnsite,
		Location:  "Selangor",
		Languages: []domain.Language{domain.LanguageMalay},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, repo.queried, "ledger is not read for an empty pool")
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeDirectory{}, &fakeSlotRepo{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Mode: domain.TrainingModeRemote})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: date(2025, time.March, 3), Mode: "hybrid"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUseCase_Execute_DirectoryError(t *testing.T) {
	uc := NewUseCase(&fakeDirectory{err: errors.New("boom")}, &fakeSlotRepo{}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Date: date(2025, time.March, 3), Mode: domain.TrainingModeRemote})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_ExecuteRange(t *testing.T) {
	dir := &fakeDirectory{trainers: []*domain.Trainer{trainer(1, []string{"Johor"}, domain.LanguageChinese)}}
	repo := &fakeSlotRepo{}
	uc := NewUseCase(dir, repo, logger.NewNop())

	// пятница 28.02 .. среда 05.03, понедельник 03.03 исключен как праздник
	resp, err := uc.ExecuteRange(context.Background(), &RangeRequest{
		From:          date(2025, time.February, 28),
		To:            date(2025, time.March, 5),
		Mode:          domain.TrainingModeRemote,
		ExcludedDates: []time.Time{date(2025, time.March, 3)},
	})
	require.NoError(t, err)

	days := make([]time.Time, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = d.Date
		assert.Len(t, d.Slots, 12)
	}
	assert.Equal(t, []time.Time{
		date(2025, time.February, 28),
		date(2025, time.March, 4),
		date(2025, time.March, 5),
	}, days)
	assert.Equal(t, days, repo.queried)
}

func TestUseCase_ExecuteRange_Validation(t *testing.T) {
	uc := NewUseCase(&fakeDirectory{}, &fakeSlotRepo{}, logger.NewNop())
	from := date(2025, time.March, 1)

	_, err := uc.ExecuteRange(context.Background(), &RangeRequest{From: from, To: from.AddDate(0, 0, -1), Mode: domain.TrainingModeRemote})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ExecuteRange(context.Background(), &RangeRequest{From: from, To: from.AddDate(0, 0, domain.MaxRangeDays), Mode: domain.TrainingModeRemote})
	assert.ErrorIs(t, err, ErrRangeTooLong)

	_, err = uc.ExecuteRange(context.Background(), &RangeRequest{From: from, To: from.AddDate(0, 0, domain.MaxRangeDays-1), Mode: domain.TrainingModeRemote})
	assert.NoError(t, err)
}
