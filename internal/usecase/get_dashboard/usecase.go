package get_dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	userRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/user"
)

// UseCase use case дашборда пользователя
type UseCase struct {
	userRepo     UserRepository
	sessionRepo  SessionRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(userRepo UserRepository, sessionRepo SessionRepository, logger Logger) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute коуч и администратор видят все сессии, клиент только свои
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GetDashboard: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("GetDashboard: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	filter := domain.SessionsFilter{}
	if !user.CanManageSessions() {
		filter.ClientID = &user.ID
	}

	sessions, err := uc.sessionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to list sessions for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: failed to list sessions: %v", ErrInternal, err)
	}

	upcoming, past := partition(sessions, uc.timeProvider.Now())

	uc.logger.Info("GetDashboard: user=%d, coach=%t, upcoming=%d, past=%d",
		user.ID, user.CanManageSessions(), len(upcoming), len(past))

	return &Response{
		Username: user.Username,
		IsCoach:  user.CanManageSessions(),
		Upcoming: upcoming,
		Past:     past,
	}, nil
}
