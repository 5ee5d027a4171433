package domain

import (
	"fmt"
	"time"
)

// TimeBucket time-of-day label from the fixed training catalogue ("09:00", "09:30", ...)
type TimeBucket string

// Buckets returns a copy of the bucket catalogue in chronological order.
func Buckets() []TimeBucket {
	out := make([]TimeBucket, len(bucketCatalogue))
	copy(out, bucketCatalogue[:])
	return out
}

// IsValid reports whether the bucket belongs to the catalogue.
func (b TimeBucket) IsValid() bool {
	for _, known := range bucketCatalogue {
		if b == known {
			return true
		}
	}
	return false
}

func (b TimeBucket) String() string {
	return string(b)
}

// ParseTimeBucket validates s against the catalogue.
func ParseTimeBucket(s string) (TimeBucket, error) {
	if _, err := time.Parse(TimeFormat, s); err != nil {
		return "", fmt.Errorf("%w: bucket %q is not in HH:MM format", ErrInvalidInput, s)
	}
	b := TimeBucket(s)
	if !b.IsValid() {
		return "", fmt.Errorf("%w: bucket %q is not in the training catalogue", ErrInvalidInput, s)
	}
	return b, nil
}
