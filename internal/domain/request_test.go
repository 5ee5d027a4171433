package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotRequest_Describe(t *testing.T) {
	req := SlotRequest{
		Date:      date(2025, 3, 1),
		Bucket:    "14:00",
		Mode:      TrainingModeOnsite,
		Location:  "Selangor",
		Languages: []Language{LanguageMalay},
	}
	assert.Equal(t, "Onsite training in Selangor speaking Malay on 2025-03-01 at 14:00", req.Describe())

	remote := SlotRequest{Date: date(2025, 3, 3), Mode: TrainingModeRemote, Location: "ignored"}
	assert.Equal(t, "Remote training on 2025-03-03", remote.Describe())
}
