package generate_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	userRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// UseCase use case массовой генерации слотов на дату
type UseCase struct {
	slotRepo  SlotRepository
	userRepo  UserRepository
	txManager TransactionManager
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		userRepo:  userRepo,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute проверяет права пользователя и генерирует слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: user=%d, date=%s", req.UserID, req.Date.Format(domain.DateFormat))

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GenerateSlots: user id=%d not found", req.UserID)
			return nil, ErrPermissionDenied
		}
		uc.logger.Error("GenerateSlots: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if !user.CanManageSessions() {
		uc.logger.Warn("GenerateSlots: user id=%d is not a coach", req.UserID)
		return nil, ErrPermissionDenied
	}

	return uc.Generate(ctx, req.Date)
}

// Generate создает слоты 09:00-17:30 на дату, пропуская существующие
// Повторный запуск на ту же дату ничего не создает и не возвращает ошибку
func (uc *UseCase) Generate(ctx context.Context, date time.Time) (*Response, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	times, err := workdaySlots()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build workday slots: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:    date,
		Created: make([]types.TimeString, 0, len(times)),
		Skipped: make([]types.TimeString, 0),
	}

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, startTime := range times {
			created, err := uc.slotRepo.CreateIfNotExists(txCtx, date, startTime)
			if err != nil {
				return fmt.Errorf("%w: failed to create slot %s: %v", ErrInternal, startTime, err)
			}
			if created {
				resp.Created = append(resp.Created, startTime)
			} else {
				resp.Skipped = append(resp.Skipped, startTime)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("GenerateSlots: date=%s: %v", date.Format(domain.DateFormat), err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	uc.metrics.RecordSlotsGenerated(len(resp.Created), len(resp.Skipped))
	uc.logger.Info("GenerateSlots: date=%s, created=%d, skipped=%d",
		date.Format(domain.DateFormat), len(resp.Created), len(resp.Skipped))

	return resp, nil
}
