package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

func TestSlotEndTime(t *testing.T) {
	slot := Slot{StartTime: types.MustTimeString("17:30")}
	assert.Equal(t, types.TimeString("18:00"), slot.EndTime())
}

func TestIsWithinWorkingHours(t *testing.T) {
	cases := map[string]bool{
		"08:59": false,
		"09:00": true,
		"12:30": true,
		"17:59": true,
		"18:00": false,
		"23:30": false,
	}
	for in, want := range cases {
		assert.Equal(t, want, IsWithinWorkingHours(types.MustTimeString(in)), in)
	}
}

func TestSessionStartsAt(t *testing.T) {
	s := Session{
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime: types.MustTimeString("10:30"),
	}
	assert.Equal(t, time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC), s.StartsAt())
}
