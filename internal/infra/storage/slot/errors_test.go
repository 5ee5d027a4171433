package slot

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsWriteConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", fmt.Errorf("%w: Create", ErrSlotAlreadyBooked), true},
		{"unique violation", &pq.Error{Code: "23505"}, true},
		{"serialization failure wrapped", fmt.Errorf("commit: %w", &pq.Error{Code: "40001"}), true},
		{"deadlock", &pq.Error{Code: "40P01"}, true},
		{"foreign key violation", &pq.Error{Code: "23503"}, false},
		{"plain error", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWriteConflict(tt.err))
		})
	}
}

func TestExecErr(t *testing.T) {
	assert.ErrorIs(t, execErr("Create", &pq.Error{Code: "23505"}), ErrSlotAlreadyBooked)
	assert.ErrorIs(t, execErr("Create", errors.New("timeout")), ErrExecQuery)
}
