package domain

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// Slot represents a bookable 30-minute window on a given date
type Slot struct {
	ID          int64
	Date        time.Time
	StartTime   types.TimeString
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EndTime returns start time + slot duration; it is never stored
func (s *Slot) EndTime() types.TimeString {
	end, err := s.StartTime.AddMinutes(SlotDurationMinutes)
	if err != nil {
		return ""
	}
	return end
}

// StartsAt returns the slot start as a point in time
func (s *Slot) StartsAt() time.Time {
	return s.StartTime.On(s.Date)
}
