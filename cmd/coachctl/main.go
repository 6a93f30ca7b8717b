package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-CoachingService/internal/cli"
	"github.com/m04kA/SMC-CoachingService/internal/config"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
)

var CLI struct {
	Config string `help:"Config file path." type:"path" default:"config.toml"`

	Migrate struct {
		Up      cli.MigrateUpCmd      `cmd:"" help:"Apply all pending migrations."`
		Down    cli.MigrateDownCmd    `cmd:"" help:"Roll back the latest migration."`
		Version cli.MigrateVersionCmd `cmd:"" help:"Print the current schema version."`
	} `cmd:"" help:"Manage the database schema."`

	GenerateSlots cli.GenerateSlotsCmd `cmd:"" help:"Create 30-minute slots from 09:00 to 18:00 for a date."`
	CreateUser    cli.CreateUserCmd    `cmd:"" help:"Create a user, optionally a coach or an administrator."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("coachctl"),
		kong.Description("Administration tool for SMC-CoachingService"),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	appCtx := &cli.Context{
		Config: cfg,
		Logger: log,
		Out:    os.Stdout,
		Now:    time.Now,
	}
	defer appCtx.Close()

	if err := kctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Close()
		appCtx.Close()
		os.Exit(1)
	}
}
