package trainers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TrainingService/internal/domain"
	"github.com/m04kA/SMC-TrainingService/internal/service/trainers/models"
	"github.com/m04kA/SMC-TrainingService/pkg/logger"
)

func newDirectory() (*Service, *fakeTrainerRepo) {
	repo := &fakeTrainerRepo{}
	repo.trainers = []*domain.Trainer{
		{ID: 1, Name: "Aisyah", Languages: []domain.Language{domain.LanguageMalay, domain.LanguageEnglish}, Locations: []string{"Kuala Lumpur, Selangor"}, Status: domain.TrainerStatusActive},
		{ID: 2, Name: "Wei Ming", Languages: []domain.Language{domain.LanguageChinese}, Locations: []string{"Penang"}, Status: domain.TrainerStatusActive},
		{ID: 3, Name: "Ravi", Languages: []domain.Language{domain.LanguageEnglish}, Locations: []string{"Selangor"}, Status: domain.TrainerStatusInactive},
	}
	repo.nextID = 3
	return NewService(repo, logger.NewNop()), repo
}

func ids(trainers []*domain.Trainer) []int64 {
	out := make([]int64, len(trainers))
	for i, t := range trainers {
		out[i] = t.ID
	}
	return out
}

func TestService_FindEligible(t *testing.T) {
	svc, _ := newDirectory()
	ctx := context.Background()

	tests := []struct {
		name      string
		mode      domain.TrainingMode
		location  string
		languages []domain.Language
		want      []int64
	}{
		{"remote ignores location", domain.TrainingModeRemote, "Johor", nil, []int64{1, 2}},
		{"onsite substring match", domain.TrainingModeOnsite, "selangor", nil, []int64{1}},
		{"onsite without location", domain.TrainingModeOnsite, "", nil, []int64{1, 2}},
		{"language union", domain.TrainingModeRemote, "", []domain.Language{domain.LanguageChinese, domain.LanguageMalay}, []int64{1, 2}},
		{"no match is empty list", domain.TrainingModeOnsite, "Selangor", []domain.Language{domain.LanguageChinese}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.FindEligible(ctx, tt.mode, tt.location, tt.languages)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestService_FindEligible_RepositoryError(t *testing.T) {
	svc, repo := newDirectory()
	repo.err = errors.New("connection refused")

	_, err := svc.FindEligible(context.Background(), domain.TrainingModeRemote, "", nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Create(t *testing.T) {
	svc, _ := newDirectory()
	ctx := context.Background()

	resp, err := svc.Create(ctx, &models.CreateTrainerRequest{
		Name:      "  Nurul ",
		Languages: []string{"malay", "English"},
		Locations: []string{"Johor Bahru", " "},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.ID)
	assert.Equal(t, "Nurul", resp.Name)
	assert.Equal(t, []string{"Malay", "English"}, resp.Languages)
	assert.Equal(t, []string{"Johor Bahru"}, resp.Locations)
	assert.Equal(t, "active", resp.Status)

	invalid := []*models.CreateTrainerRequest{
		{Name: "", Languages: []string{"English"}, Locations: []string{"KL"}},
		{Name: "X", Languages: []string{"Klingon"}, Locations: []string{"KL"}},
		{Name: "X", Languages: nil, Locations: []string{"KL"}},
		{Name: "X", Languages: []string{"English"}, Locations: nil},
	}
	for _, req := range invalid {
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestService_SetStatus(t *testing.T) {
	svc, _ := newDirectory()
	ctx := context.Background()

	resp, err := svc.SetStatus(ctx, 3, &models.SetStatusRequest{Status: "Active"})
	require.NoError(t, err)
	assert.Equal(t, "active", resp.Status)

	eligible, err := svc.FindEligible(ctx, domain.TrainingModeOnsite, "Selangor", []domain.Language{domain.LanguageEnglish})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids(eligible))

	_, err = svc.SetStatus(ctx, 99, &models.SetStatusRequest{Status: "inactive"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.SetStatus(ctx, 1, &models.SetStatusRequest{Status: "deleted"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
