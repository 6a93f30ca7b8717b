package book_session

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

const minGap = domain.MinSessionGapMinutes * time.Minute

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := validateStartTime(req.StartTime); err != nil {
		return err
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(subject) > domain.MaxSubjectLength {
		return fmt.Errorf("%w: subject is longer than %d characters", ErrInvalidInput, domain.MaxSubjectLength)
	}

	return nil
}

// validateStartTime время должно быть корректным HH:MM, иначе рабочие часы не проверить
func validateStartTime(t types.TimeString) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	return nil
}

// checkWorkingHours 09:00 <= t < 18:00
func checkWorkingHours(t types.TimeString) error {
	if !domain.IsWithinWorkingHours(t) {
		return fmt.Errorf("%w: %s", ErrOutOfHours, t)
	}
	return nil
}

// checkSlot слот должен существовать и быть свободным
func checkSlot(slot *domain.Slot) error {
	if slot == nil {
		return ErrNoSuchSlot
	}
	if !slot.IsAvailable {
		return ErrSlotUnavailable
	}
	return nil
}

// checkMinimumGap ищет сессию того же дня (кроме самого слота), начинающуюся
// в пределах [candidate-10m, candidate+10m], границы включены
func checkMinimumGap(slot *domain.Slot, sameDay []*domain.Session) error {
	candidate := slot.StartsAt()

	for _, other := range sameDay {
		if other.SlotID == slot.ID {
			continue
		}
		if !isSameDay(other.Date, slot.Date) {
			continue
		}

		diff := other.StartsAt().Sub(candidate)
		if diff >= -minGap && diff <= minGap {
			return fmt.Errorf("%w: session id=%d starts at %s", ErrTooClose, other.ID, other.StartTime)
		}
	}

	return nil
}

// validateBooking применяет проверки по порядку; побеждает первая неудачная
func validateBooking(startTime types.TimeString, slot *domain.Slot, sameDay []*domain.Session) error {
	if err := checkWorkingHours(startTime); err != nil {
		return err
	}
	if err := checkSlot(slot); err != nil {
		return err
	}
	return checkMinimumGap(slot, sameDay)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
