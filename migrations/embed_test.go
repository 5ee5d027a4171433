package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsOrderedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "00001_create_trainers.sql", files[0])
	assert.Equal(t, "00002_create_training_slots.sql", files[1])

	for _, name := range files {
		body, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

func TestFS_SlotsHavePartialUniqueIndex(t *testing.T) {
	body, err := fs.ReadFile(FS, "00002_create_training_slots.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "ON training_slots (slot_date, time_bucket, trainer_id)")
	assert.Contains(t, string(body), "WHERE status = 'booked'")
}
