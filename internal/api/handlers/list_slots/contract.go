package list_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/service/slots/models"
)

type SlotService interface {
	ListByDate(ctx context.Context, date time.Time, onlyAvailable bool) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
