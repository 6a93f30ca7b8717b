package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	slotRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CoachingService/internal/service/slots/models"
)

// Service сервис календаря слотов
type Service struct {
	slotRepo SlotRepository
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// ListByDate возвращает слоты на дату в порядке времени начала
func (s *Service) ListByDate(ctx context.Context, date time.Time, onlyAvailable bool) (*models.SlotListResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	slots, err := s.slotRepo.ListByDate(ctx, date, onlyAvailable)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(date, slots), nil
}

// Create создает один слот (только коуч или администратор)
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: slot %s %s by user=%d", req.Date.Format(domain.DateFormat), req.StartTime, req.UserID)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := s.checkCoachAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	if !domain.IsWithinWorkingHours(req.StartTime) {
		s.logger.Warn("Create: %s is outside working hours", req.StartTime)
		return nil, ErrOutOfHours
	}

	slot, err := s.slotRepo.Create(ctx, req.Date, req.StartTime)
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateSlot) {
			s.logger.Warn("Create: slot %s %s already exists", req.Date.Format(domain.DateFormat), req.StartTime)
			return nil, ErrDuplicateSlot
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: slot id=%d created", slot.ID)
	return models.FromDomainSlot(slot), nil
}

// checkCoachAccess проверяет, что пользователь коуч или администратор
func (s *Service) checkCoachAccess(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("checkCoachAccess: user id=%d not found", userID)
			return ErrPermissionDenied
		}
		s.logger.Error("checkCoachAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkCoachAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.CanManageSessions() {
		s.logger.Warn("checkCoachAccess: user=%d is not a coach", userID)
		return ErrPermissionDenied
	}

	return nil
}
