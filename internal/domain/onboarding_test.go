package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnboardingCase_WithPreferences(t *testing.T) {
	oc := &OnboardingCase{
		TrainingMode:       TrainingModeOnsite,
		PreferredLocation:  "Selangor",
		PreferredLanguages: []Language{LanguageMalay},
	}

	filled := oc.WithPreferences(SlotRequest{Bucket: "09:00"})
	assert.Equal(t, TrainingModeOnsite, filled.Mode)
	assert.Equal(t, "Selangor", filled.Location)
	assert.Equal(t, []Language{LanguageMalay}, filled.Languages)

	explicit := oc.WithPreferences(SlotRequest{Mode: TrainingModeRemote, Languages: []Language{LanguageEnglish}})
	assert.Equal(t, TrainingModeRemote, explicit.Mode)
	assert.Empty(t, explicit.Location, "remote requests do not inherit a location")
	assert.Equal(t, []Language{LanguageEnglish}, explicit.Languages)
}
