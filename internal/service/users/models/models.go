package models

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// SignupRequest регистрация клиента
type SignupRequest struct {
	Username string
	Email    string
	Password string
}

// CreateUserRequest создание пользователя с ролями (административный CLI)
type CreateUserRequest struct {
	Username string
	Email    string
	Password string
	IsCoach  bool
	IsAdmin  bool
}

// LoginRequest вход по имени пользователя и паролю
type LoginRequest struct {
	Username string
	Password string
}

// SearchRequest поиск пользователей
type SearchRequest struct {
	UserID int64
	Query  string
}

// UserResponse публичные данные пользователя
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsCoach   bool      `json:"isCoach"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// TokenResponse токен доступа
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// UserListResponse список пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// FromDomainUser конвертирует domain модель в DTO (без хеша пароля)
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsCoach:   u.IsCoach,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// FromDomainUserList конвертирует список пользователей в DTO
func FromDomainUserList(users []*domain.User) *UserListResponse {
	resp := &UserListResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		if item := FromDomainUser(u); item != nil {
			resp.Users = append(resp.Users, *item)
		}
	}
	return resp
}
