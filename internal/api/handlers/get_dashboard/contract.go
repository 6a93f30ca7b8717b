package get_dashboard

import (
	"context"

	getDashboard "github.com/m04kA/SMC-CoachingService/internal/usecase/get_dashboard"
)

type GetDashboardUseCase interface {
	Execute(ctx context.Context, req *getDashboard.Request) (*getDashboard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
