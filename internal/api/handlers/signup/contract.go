package signup

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/service/users/models"
)

type UserService interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
