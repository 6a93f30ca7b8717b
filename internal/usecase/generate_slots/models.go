package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// Request модель запроса на генерацию слотов
type Request struct {
	UserID int64     // ID пользователя, выполняющего генерацию
	Date   time.Time // Дата, на которую создаются слоты
}

// Response итог генерации
type Response struct {
	Date    time.Time
	Created []types.TimeString // Созданные слоты
	Skipped []types.TimeString // Уже существовавшие слоты
}
