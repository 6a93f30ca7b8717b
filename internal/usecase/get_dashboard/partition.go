package get_dashboard

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// partition делит сессии на предстоящие и прошедшие относительно now
// Предстоящая: дата позже сегодняшней, либо сегодня и время начала >= текущего
func partition(sessions []*domain.Session, now time.Time) (upcoming, past []*domain.Session) {
	upcoming = make([]*domain.Session, 0)
	past = make([]*domain.Session, 0)

	for _, s := range sessions {
		if isUpcoming(s, now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return startOf(upcoming[i], now.Location()).Before(startOf(upcoming[j], now.Location()))
	})
	sort.SliceStable(past, func(i, j int) bool {
		return startOf(past[i], now.Location()).After(startOf(past[j], now.Location()))
	})

	return upcoming, past
}

func isUpcoming(s *domain.Session, now time.Time) bool {
	return !startOf(s, now.Location()).Before(now)
}

// startOf момент начала сессии: календарная дата слота и время начала в часовом поясе now
func startOf(s *domain.Session, loc *time.Location) time.Time {
	y, m, d := s.Date.Date()
	minutes := s.StartTime.Minutes()
	if minutes < 0 {
		minutes = 0
	}
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc)
}
