package cli

import (
	"context"

	"github.com/m04kA/SMC-CoachingService/internal/infra/storage/migrations"
)

type MigrateUpCmd struct{}

func (c *MigrateUpCmd) Run(ctx *Context) error {
	migrator, err := newMigrator(ctx)
	if err != nil {
		return err
	}
	return migrator.Up(context.Background())
}

type MigrateDownCmd struct{}

func (c *MigrateDownCmd) Run(ctx *Context) error {
	migrator, err := newMigrator(ctx)
	if err != nil {
		return err
	}
	if err := migrator.Down(context.Background()); err != nil {
		return err
	}
	ctx.printf("Rolled back one migration\n")
	return nil
}

type MigrateVersionCmd struct{}

func (c *MigrateVersionCmd) Run(ctx *Context) error {
	migrator, err := newMigrator(ctx)
	if err != nil {
		return err
	}
	version, err := migrator.Version(context.Background())
	if err != nil {
		return err
	}
	ctx.printf("Schema version: %d\n", version)
	return nil
}

func newMigrator(ctx *Context) (*migrations.Migrator, error) {
	db, err := ctx.DB()
	if err != nil {
		return nil, err
	}
	return migrations.NewMigrator(db, ctx.Logger)
}
