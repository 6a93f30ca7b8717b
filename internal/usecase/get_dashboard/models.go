package get_dashboard

import "github.com/m04kA/SMC-CoachingService/internal/domain"

// Request модель запроса дашборда
type Request struct {
	UserID int64
}

// Response дашборд: предстоящие (по возрастанию) и прошедшие (по убыванию) сессии
type Response struct {
	Username string
	IsCoach  bool // true для коуча и администратора: показаны сессии всех клиентов
	Upcoming []*domain.Session
	Past     []*domain.Session
}
