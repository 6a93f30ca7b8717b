package cli

import (
	"context"

	userRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/user"
	usersService "github.com/m04kA/SMC-CoachingService/internal/service/users"
	"github.com/m04kA/SMC-CoachingService/internal/service/users/models"
	"github.com/m04kA/SMC-CoachingService/pkg/jwtauth"
)

type CreateUserCmd struct {
	Username string `arg:"" help:"Login name."`
	Email    string `arg:"" help:"E-mail address."`
	Password string `help:"Password (at least 8 characters)." env:"COACHCTL_PASSWORD" required:""`
	Coach    bool   `help:"Grant the coach role."`
	Admin    bool   `help:"Grant the administrator role."`
}

func (c *CreateUserCmd) Run(ctx *Context) error {
	db, err := ctx.DB()
	if err != nil {
		return err
	}

	tokens, err := jwtauth.NewManager(ctx.Config.Auth.JWTSecret, ctx.Config.Auth.TokenTTL(), ctx.Config.Auth.Issuer)
	if err != nil {
		return err
	}

	svc := usersService.NewService(userRepo.NewRepository(db), tokens, ctx.Logger)
	user, err := svc.CreateUser(context.Background(), &models.CreateUserRequest{
		Username: c.Username,
		Email:    c.Email,
		Password: c.Password,
		IsCoach:  c.Coach,
		IsAdmin:  c.Admin,
	})
	if err != nil {
		return err
	}

	ctx.printf("Created user %s (id=%d, coach=%t, admin=%t)\n", user.Username, user.ID, user.IsCoach, user.IsAdmin)
	return nil
}
