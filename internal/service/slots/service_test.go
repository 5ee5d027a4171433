package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	"github.com/m04kA/SMC-TrainingService/internal/service/slots/models"
	"github.com/m04kA/SMC-TrainingService/pkg/logger"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func newLedger() (*Service, *fakeSlotRepo) {
	repo := newFakeSlotRepo(
		&domain.TrainingSlot{ID: 1, OnboardingID: 10, TrainerID: 100, Date: day(3), Bucket: "09:00", Mode: domain.TrainingModeRemote, Status: domain.SlotStatusBooked},
		&domain.TrainingSlot{ID: 2, OnboardingID: 10, TrainerID: 200, Date: day(4), Bucket: "14:00", Mode: domain.TrainingModeRemote, Status: domain.SlotStatusCompleted},
		&domain.TrainingSlot{ID: 3, OnboardingID: 11, TrainerID: 100, Date: day(10), Bucket: "10:00", Mode: domain.TrainingModeRemote, Status: domain.SlotStatusCancelled},
	)
	return NewService(repo, fakeTxManager{}, logger.NewNop()), repo
}

func TestService_Cancel(t *testing.T) {
	svc, repo := newLedger()

	resp, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.NotNil(t, resp.CancelledAt)
	assert.Equal(t, 1, repo.transitions)
}

func TestService_Complete(t *testing.T) {
	svc, _ := newLedger()

	resp, err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.NotNil(t, resp.CompletedAt)
	assert.Nil(t, resp.CancelledAt)
}

func TestService_TerminalSlotsAreNotMutated(t *testing.T) {
	svc, repo := newLedger()
	ctx := context.Background()

	tests := []struct {
		name string
		id   int64
		call func(context.Context, int64) (*models.SlotResponse, error)
		want domain.SlotStatus
	}{
		{"cancel completed", 2, svc.Cancel, domain.SlotStatusCompleted},
		{"complete completed", 2, svc.Complete, domain.SlotStatusCompleted},
		{"cancel cancelled", 3, svc.Cancel, domain.SlotStatusCancelled},
		{"complete cancelled", 3, svc.Complete, domain.SlotStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.call(ctx, tt.id)
			assert.ErrorIs(t, err, ErrSlotTerminal)
			assert.ErrorIs(t, err, domain.ErrInvalidState)

			slot, err := repo.GetByID(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, slot.Status)
		})
	}
	assert.Equal(t, 0, repo.transitions)
}

func TestService_CancelTwice(t *testing.T) {
	svc, _ := newLedger()
	ctx := context.Background()

	_, err := svc.Cancel(ctx, 1)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestService_NotFound(t *testing.T) {
	svc, _ := newLedger()

	_, err := svc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ListByOnboarding(t *testing.T) {
	svc, _ := newLedger()

	resp, err := svc.ListByOnboarding(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, int64(1), resp.Slots[0].ID)
	assert.Equal(t, "2025-03-03", resp.Slots[0].Date)
	assert.Equal(t, "09:00", resp.Slots[0].Bucket)

	empty, err := svc.ListByOnboarding(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, empty.Slots)
}

func TestService_ListByTrainer(t *testing.T) {
	svc, _ := newLedger()
	ctx := context.Background()

	all, err := svc.ListByTrainer(ctx, &models.ListByTrainerRequest{TrainerID: 100})
	require.NoError(t, err)
	assert.Len(t, all.Slots, 2)

	from, to := day(1), day(7)
	week, err := svc.ListByTrainer(ctx, &models.ListByTrainerRequest{TrainerID: 100, StartDate: &from, EndDate: &to})
	require.NoError(t, err)
	require.Len(t, week.Slots, 1)
	assert.Equal(t, int64(1), week.Slots[0].ID)

	_, err = svc.ListByTrainer(ctx, &models.ListByTrainerRequest{TrainerID: 100, StartDate: &to, EndDate: &from})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	bogus := "archived"
	_, err = svc.ListByTrainer(ctx, &models.ListByTrainerRequest{TrainerID: 100, Status: &bogus})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
