package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainer_ServesLocation(t *testing.T) {
	trainer := &Trainer{Locations: []string{"Kuala Lumpur, Selangor", "Penang Island"}}

	tests := []struct {
		name     string
		location string
		want     bool
	}{
		{"exact substring", "Kuala Lumpur", true},
		{"case insensitive", "selangor", true},
		{"surrounding spaces", "  Penang ", true},
		{"empty location matches", "", true},
		{"unknown region", "Johor", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trainer.ServesLocation(tt.location))
		})
	}
}

func TestTrainer_SpeaksAnyOf(t *testing.T) {
	trainer := &Trainer{Languages: []Language{LanguageEnglish, LanguageMalay}}

	assert.True(t, trainer.SpeaksAnyOf(nil))
	assert.True(t, trainer.SpeaksAnyOf([]Language{LanguageChinese, LanguageMalay}))
	assert.False(t, trainer.SpeaksAnyOf([]Language{LanguageChinese}))
}

func TestTrainer_MatchesRequirements(t *testing.T) {
	trainer := &Trainer{
		Languages: []Language{LanguageChinese},
		Locations: []string{"Penang"},
	}

	// Локация проверяется только для onsite
	assert.True(t, trainer.MatchesRequirements(TrainingModeRemote, "Selangor", nil))
	assert.False(t, trainer.MatchesRequirements(TrainingModeOnsite, "Selangor", nil))
	assert.True(t, trainer.MatchesRequirements(TrainingModeOnsite, "penang", []Language{LanguageChinese}))
	assert.False(t, trainer.MatchesRequirements(TrainingModeOnsite, "Penang", []Language{LanguageMalay}))
}

func TestParseLanguages(t *testing.T) {
	langs, err := ParseLanguages([]string{"malay", "English", "MALAY", ""})
	require.NoError(t, err)
	assert.Equal(t, []Language{LanguageMalay, LanguageEnglish}, langs)

	_, err = ParseLanguages([]string{"Klingon"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
