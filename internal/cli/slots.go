package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/user"
	generateSlots "github.com/m04kA/SMC-CoachingService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-CoachingService/pkg/metrics"
	"github.com/m04kA/SMC-CoachingService/pkg/txmanager"
)

type GenerateSlotsCmd struct {
	Date string `help:"Date to fill with slots (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *GenerateSlotsCmd) Run(ctx *Context) error {
	date, err := parseDate(c.Date, ctx.Now())
	if err != nil {
		return err
	}

	db, err := ctx.DB()
	if err != nil {
		return err
	}

	// CLI работает без авторизации и без Prometheus
	var noMetrics *metrics.Metrics
	uc := generateSlots.NewUseCase(
		slotRepo.NewRepository(db),
		userRepo.NewRepository(db),
		txmanager.NewFromSQL(db),
		noMetrics,
		ctx.Logger,
	)

	result, err := uc.Generate(context.Background(), date)
	if err != nil {
		return err
	}

	ctx.printf("Slots for %s: created %d, skipped %d\n",
		result.Date.Format(domain.DateFormat), len(result.Created), len(result.Skipped))
	return nil
}

// parseDate принимает YYYY-MM-DD или "today"
func parseDate(value string, now time.Time) (time.Time, error) {
	if strings.EqualFold(value, "today") {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return date, nil
}
