package domain

import "github.com/m04kA/SMC-CoachingService/pkg/types"

// Параметры расписания
const (
	SlotDurationMinutes  = 30
	MinSessionGapMinutes = 10 // Минимальный разрыв между началом сессий в один день (включительно)
)

// Рабочее время коуча: [WorkdayStart, WorkdayEnd)
var (
	WorkdayStart = types.MustTimeString("09:00")
	WorkdayEnd   = types.MustTimeString("18:00")
)

// Business validation constants
const (
	MaxSubjectLength  = 255
	MaxNotesLength    = 5000
	MinPasswordLength = 8
	MaxUsernameLength = 150
	MaxChatMessage    = 4000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Отправители сообщений чата
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// IsWithinWorkingHours true, если 09:00 <= t < 18:00
func IsWithinWorkingHours(t types.TimeString) bool {
	return !t.IsBefore(WorkdayStart) && t.IsBefore(WorkdayEnd)
}
