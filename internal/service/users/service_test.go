package users

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	userRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CoachingService/internal/service/users/models"
	"github.com/m04kA/SMC-CoachingService/pkg/jwtauth"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
)

type fakeRepo struct {
	users []*domain.User
}

func (f *fakeRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return nil, userRepo.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return nil, userRepo.ErrEmailTaken
		}
	}
	created := *u
	created.ID = int64(len(f.users) + 1)
	created.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	f.users = append(f.users, &created)
	return &created, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeRepo) Search(_ context.Context, q string) ([]*domain.User, error) {
	out := make([]*domain.User, 0)
	for _, u := range f.users {
		if q == "" || strings.Contains(u.Username, q) || strings.Contains(u.Email, q) {
			out = append(out, u)
		}
	}
	return out, nil
}

func newTestService(t *testing.T) (*Service, *fakeRepo, *jwtauth.Manager) {
	t.Helper()
	tokens, err := jwtauth.NewManager("test-secret", time.Hour, "test")
	require.NoError(t, err)

	repo := &fakeRepo{}
	svc := NewService(repo, tokens, logger.NewNop())
	svc.bcryptCost = bcrypt.MinCost
	return svc, repo, tokens
}

func TestSignupAndLogin(t *testing.T) {
	svc, repo, tokens := newTestService(t)
	ctx := context.Background()

	user, err := svc.Signup(ctx, &models.SignupRequest{Username: " alice ", Email: "Alice@Example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.IsCoach)
	assert.NotEqual(t, "password123", repo.users[0].PasswordHash)

	token, err := svc.Login(ctx, &models.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, user.ID, token.User.ID)

	id, err := tokens.Parse(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestSignup_Duplicates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &models.SignupRequest{Username: "bob", Email: "bob@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, &models.SignupRequest{Username: "bob", Email: "other@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Signup(ctx, &models.SignupRequest{Username: "bobby", Email: "BOB@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignup_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)

	tests := []struct {
		name string
		req  models.SignupRequest
	}{
		{"empty username", models.SignupRequest{Username: "  ", Email: "a@example.com", Password: "password123"}},
		{"bad username", models.SignupRequest{Username: "a b", Email: "a@example.com", Password: "password123"}},
		{"bad email", models.SignupRequest{Username: "anna", Email: "not-an-email", Password: "password123"}},
		{"short password", models.SignupRequest{Username: "anna", Email: "a@example.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &models.SignupRequest{Username: "carol", Email: "carol@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &models.LoginRequest{Username: "carol", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &models.LoginRequest{Username: "nobody", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &models.LoginRequest{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSearch(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	coach, err := svc.CreateUser(ctx, &models.CreateUserRequest{Username: "coach", Email: "coach@example.com", Password: "password123", IsCoach: true})
	require.NoError(t, err)
	client, err := svc.Signup(ctx, &models.SignupRequest{Username: "dave", Email: "dave@example.com", Password: "password123"})
	require.NoError(t, err)

	resp, err := svc.Search(ctx, &models.SearchRequest{UserID: coach.ID, Query: "dave"})
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.Equal(t, client.ID, resp.Users[0].ID)

	_, err = svc.Search(ctx, &models.SearchRequest{UserID: client.ID, Query: "coach"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.Search(ctx, &models.SearchRequest{UserID: 999})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
