package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/session"
	userRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CoachingService/internal/service/sessions/models"
	"github.com/m04kA/SMC-CoachingService/pkg/ptr"
)

// Service сервис для работы с сессиями
type Service struct {
	sessionRepo SessionRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(sessionRepo SessionRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetByID получает сессию по ID
// Клиент видит только свою сессию, коуч и администратор любую
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.SessionResponse, error) {
	s.logger.Info("GetByID: fetching session id=%d for user=%d", id, userID)

	session, err := s.getSession(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !session.IsOwnedBy(userID) {
		user, err := s.getUser(ctx, "GetByID", userID)
		if err != nil {
			return nil, err
		}
		if !user.CanManageSessions() {
			s.logger.Warn("GetByID: access denied for user=%d to session id=%d", userID, id)
			return nil, ErrPermissionDenied
		}
	}

	return models.FromDomainSession(session), nil
}

// UpdateNotes обновляет заметки коуча
// Сначала проверяется существование сессии, затем права: заметки редактирует только коуч
func (s *Service) UpdateNotes(ctx context.Context, id int64, req *models.UpdateNotesRequest) (*models.SessionResponse, error) {
	s.logger.Info("UpdateNotes: session id=%d by user=%d", id, req.UserID)

	notes := req.Notes
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if utf8.RuneCountInString(trimmed) > domain.MaxNotesLength {
			return nil, fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
		if trimmed == "" {
			notes = nil
		} else {
			notes = ptr.Ptr(trimmed)
		}
	}

	session, err := s.getSession(ctx, "UpdateNotes", id)
	if err != nil {
		return nil, err
	}

	user, err := s.getUser(ctx, "UpdateNotes", req.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsCoach {
		s.logger.Warn("UpdateNotes: user=%d is not a coach", req.UserID)
		return nil, ErrPermissionDenied
	}

	if err := s.sessionRepo.UpdateNotes(ctx, id, notes); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("UpdateNotes: repository error for session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateNotes - repository error: %v", ErrInternal, err)
	}

	session.CoachNotes = notes
	s.logger.Info("UpdateNotes: session id=%d updated by coach=%d", id, req.UserID)

	return models.FromDomainSession(session), nil
}

// Search ищет сессии по теме или имени клиента
// Клиент ищет только среди своих сессий
func (s *Service) Search(ctx context.Context, req *models.SearchRequest) (*models.SessionListResponse, error) {
	user, err := s.getUser(ctx, "Search", req.UserID)
	if err != nil {
		return nil, err
	}

	filter := domain.SessionsFilter{Search: req.Query}
	if !user.CanManageSessions() {
		filter.ClientID = ptr.Ptr(user.ID)
	}

	sessions, err := s.sessionRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Search: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: user=%d, query=%q, found=%d", req.UserID, req.Query, len(sessions))
	return models.FromDomainSessionList(sessions), nil
}

func (s *Service) getSession(ctx context.Context, op string, id int64) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("%s: session id=%d not found", op, id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("%s: repository error for session id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return session, nil
}

func (s *Service) getUser(ctx context.Context, op string, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			// Токен выдан удаленному пользователю
			s.logger.Warn("%s: user id=%d not found", op, id)
			return nil, ErrPermissionDenied
		}
		s.logger.Error("%s: failed to get user id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - failed to get user: %v", ErrInternal, op, err)
	}
	return user, nil
}
