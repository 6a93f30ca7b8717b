package search_users

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/service/users/models"
)

type UserService interface {
	Search(ctx context.Context, req *models.SearchRequest) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
