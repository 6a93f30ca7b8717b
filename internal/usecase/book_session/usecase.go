package book_session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/session"
	slotRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-CoachingService/pkg/pgerrors"
	"github.com/m04kA/SMC-CoachingService/pkg/ptr"
)

// Результаты для метрики booking_attempts_total
const (
	resultSuccess         = "success"
	resultOutOfHours      = "out_of_hours"
	resultNoSuchSlot      = "no_such_slot"
	resultSlotUnavailable = "slot_unavailable"
	resultTooClose        = "too_close"
	resultInvalidInput    = "invalid_input"
	resultError           = "error"
)

// UseCase use case бронирования сессии
type UseCase struct {
	slotRepo    SlotRepository
	sessionRepo SessionRepository
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	sessionRepo SessionRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute бронирует слот с точным совпадением даты и времени
// Чтение слота, проверки и обе записи выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSession: client=%d, date=%s, time=%s",
		req.ClientID, req.Date.Format(domain.DateFormat), req.StartTime)

	result, err := uc.execute(ctx, req)
	uc.metrics.RecordBookingAttempt(resultLabel(err))
	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookSession: created session id=%d on slot id=%d", result.ID, result.SlotID)

	return &Response{
		ID:        result.ID,
		ClientID:  result.ClientID,
		SlotID:    result.SlotID,
		Subject:   result.Subject,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   (&domain.Slot{StartTime: result.StartTime}).EndTime(),
		CreatedAt: result.CreatedAt,
	}, nil
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*domain.Session, error) {
	// 1. Рабочие часы проверяются первыми и до обращения к БД
	if err := validateStartTime(req.StartTime); err != nil {
		uc.logger.Warn("BookSession: validation failed: %v", err)
		return nil, err
	}
	if err := checkWorkingHours(req.StartTime); err != nil {
		uc.logger.Warn("BookSession: %v", err)
		return nil, err
	}

	// 2. Остальные входные данные
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSession: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Session

	// 3. Сериализуемая транзакция: блокировка слота, проверки, вставка сессии, CAS слота
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Слот по точному (date, start_time), строка блокируется FOR UPDATE
		slot, err := uc.slotRepo.GetByDateTime(txCtx, req.Date, req.StartTime)
		if err != nil && !errors.Is(err, slotRepo.ErrSlotNotFound) {
			return fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
		}

		// 3.2. Сессии этого дня для проверки минимального разрыва
		var sameDay []*domain.Session
		if slot != nil && slot.IsAvailable {
			sameDay, err = uc.sessionRepo.List(txCtx, domain.SessionsFilter{Date: ptr.Ptr(slot.Date)})
			if err != nil {
				return fmt.Errorf("%w: failed to list sessions: %w", ErrInternal, err)
			}
		}

		// 3.3. Проверки по порядку
		if err := validateBooking(req.StartTime, slot, sameDay); err != nil {
			uc.logger.Warn("BookSession: rejected: %v", err)
			return err
		}

		// 3.4. Создаем сессию
		session, err := uc.sessionRepo.Create(txCtx, &domain.Session{
			ClientID: req.ClientID,
			SlotID:   slot.ID,
			Subject:  strings.TrimSpace(req.Subject),
		})
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSlotAlreadyBooked) {
				return ErrSlotUnavailable
			}
			return fmt.Errorf("%w: failed to create session: %w", ErrInternal, err)
		}

		// 3.5. available -> booked, только если слот все еще свободен
		if err := uc.slotRepo.MarkBooked(txCtx, slot.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
				return ErrSlotUnavailable
			}
			return fmt.Errorf("%w: failed to mark slot booked: %w", ErrInternal, err)
		}

		session.Date = slot.Date
		session.StartTime = slot.StartTime
		created = session
		return nil
	})

	if err != nil {
		// Проигранная гонка за слот выглядит для клиента как занятый слот
		if pgerrors.IsSerializationFailure(err) || pgerrors.IsUniqueViolation(err) {
			uc.logger.Warn("BookSession: concurrent booking of %s %s: %v",
				req.Date.Format(domain.DateFormat), req.StartTime, err)
			return nil, ErrSlotUnavailable
		}
		if isRejection(err) {
			return nil, err
		}
		uc.logger.Error("BookSession: %v", err)
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil, err
	}

	return created, nil
}

func isRejection(err error) bool {
	return errors.Is(err, ErrOutOfHours) ||
		errors.Is(err, ErrNoSuchSlot) ||
		errors.Is(err, ErrSlotUnavailable) ||
		errors.Is(err, ErrTooClose)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultSuccess
	case errors.Is(err, ErrOutOfHours):
		return resultOutOfHours
	case errors.Is(err, ErrNoSuchSlot):
		return resultNoSuchSlot
	case errors.Is(err, ErrSlotUnavailable):
		return resultSlotUnavailable
	case errors.Is(err, ErrTooClose):
		return resultTooClose
	case errors.Is(err, ErrInvalidInput):
		return resultInvalidInput
	default:
		return resultError
	}
}
