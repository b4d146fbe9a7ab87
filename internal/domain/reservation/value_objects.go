package reservation

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTimeSlot = errors.New("end time must be after start time")

// TimeSlot is a half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Hours is the real-valued length of the slot, so a 90-minute slot
// contributes 1.5 billable hours.
func (ts TimeSlot) Hours() float64 {
	return ts.Duration().Hours()
}

// Overlaps reports whether two half-open intervals share at least one
// instant: other.start < ts.end AND other.end > ts.start. Back-to-back
// slots (other.end == ts.start) do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return other.start.Before(ts.end) && other.end.After(ts.start)
}

func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.start) && t.Before(ts.end)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}
