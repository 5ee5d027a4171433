package domain

import (
	"fmt"
	"strings"
	"time"
)

// SlotRequest what a caller asks for: a date/bucket plus trainer requirements
type SlotRequest struct {
	Date      time.Time
	Bucket    TimeBucket // empty for whole-day availability queries
	Mode      TrainingMode
	Location  string
	Languages []Language
}

// Describe renders the request for user-facing messages, e.g.
// "Onsite training in Selangor speaking Malay on 2025-03-01 at 14:00".
func (r SlotRequest) Describe() string {
	var b strings.Builder
	b.WriteString(r.Mode.Title())
	b.WriteString(" training")
	if r.Mode == TrainingModeOnsite && r.Location != "" {
		fmt.Fprintf(&b, " in %s", r.Location)
	}
	if len(r.Languages) > 0 {
		names := make([]string, len(r.Languages))
		for i, l := range r.Languages {
			names[i] = string(l)
		}
		fmt.Fprintf(&b, " speaking %s", strings.Join(names, " or "))
	}
	if !r.Date.IsZero() {
		fmt.Fprintf(&b, " on %s", r.Date.Format(DateFormat))
	}
	if r.Bucket != "" {
		fmt.Fprintf(&b, " at %s", r.Bucket)
	}
	return b.String()
}
