package domain

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// Session represents a booked coaching session
type Session struct {
	ID         int64
	ClientID   int64
	SlotID     int64
	Subject    string
	CoachNotes *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Данные слота и клиента (заполняются при чтении через JOIN)
	Date           time.Time
	StartTime      types.TimeString
	ClientUsername string
}

// StartsAt returns the session start as a point in time
func (s *Session) StartsAt() time.Time {
	return s.StartTime.On(s.Date)
}

// IsOwnedBy returns true if the session belongs to the user
func (s *Session) IsOwnedBy(userID int64) bool {
	return s.ClientID == userID
}

// SessionsFilter фильтр для выборки сессий
type SessionsFilter struct {
	ClientID *int64     // Только сессии клиента (nil - все)
	Date     *time.Time // Только сессии на дату
	Search   string     // Поиск по теме или имени клиента (ILIKE)
}
