package book_session

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// Request модель запроса на бронирование сессии
type Request struct {
	ClientID  int64            // ID клиента из токена
	Date      time.Time        // Дата (без времени)
	StartTime types.TimeString // Время начала, например "10:00"
	Subject   string           // Тема сессии
}

// Response модель ответа с созданной сессией
type Response struct {
	ID        int64
	ClientID  int64
	SlotID    int64
	Subject   string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
}
