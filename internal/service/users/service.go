package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	userRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CoachingService/internal/service/users/models"
)

const tokenType = "Bearer"

// Service сервис учетных записей
type Service struct {
	userRepo   UserRepository
	tokens     TokenIssuer
	bcryptCost int
	logger     Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, tokens TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger,
	}
}

// Signup регистрирует клиента
func (s *Service) Signup(ctx context.Context, req *models.SignupRequest) (*models.UserResponse, error) {
	return s.CreateUser(ctx, &models.CreateUserRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
}

// CreateUser создает пользователя с указанными ролями
// Занятые username и email проверяются заранее и повторно по уникальным индексам
func (s *Service) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	username, email, err := normalizeCredentials(req.Username, req.Email, req.Password)
	if err != nil {
		s.logger.Warn("CreateUser: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkAvailable(ctx, username, email); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("CreateUser: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsCoach:      req.IsCoach,
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUsernameTaken):
			return nil, ErrUsernameTaken
		case errors.Is(err, userRepo.ErrEmailTaken):
			return nil, ErrEmailTaken
		}
		s.logger.Error("CreateUser: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateUser: user id=%d (%s) created, coach=%t, admin=%t", user.ID, user.Username, user.IsCoach, user.IsAdmin)
	return models.FromDomainUser(user), nil
}

// Login проверяет пароль и выпускает токен доступа
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username %q", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: failed to issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   tokenType,
		ExpiresAt:   expiresAt,
		User:        *models.FromDomainUser(user),
	}, nil
}

// Search ищет пользователей по username или email (только коуч и администратор)
func (s *Service) Search(ctx context.Context, req *models.SearchRequest) (*models.UserListResponse, error) {
	viewer, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrPermissionDenied
		}
		s.logger.Error("Search: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Search - failed to get user: %v", ErrInternal, err)
	}
	if !viewer.CanManageSessions() {
		s.logger.Warn("Search: user=%d is not allowed to search users", req.UserID)
		return nil, ErrPermissionDenied
	}

	found, err := s.userRepo.Search(ctx, req.Query)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUserList(found), nil
}

func (s *Service) checkAvailable(ctx context.Context, username, email string) error {
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		s.logger.Warn("CreateUser: username %q already taken", username)
		return ErrUsernameTaken
	} else if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("CreateUser: repository error: %v", err)
		return fmt.Errorf("%w: checkAvailable - repository error: %v", ErrInternal, err)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		s.logger.Warn("CreateUser: email %q already registered", email)
		return ErrEmailTaken
	} else if !errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Error("CreateUser: repository error: %v", err)
		return fmt.Errorf("%w: checkAvailable - repository error: %v", ErrInternal, err)
	}

	return nil
}
