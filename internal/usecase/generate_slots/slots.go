package generate_slots

import (
	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// workdaySlots возвращает времена начала слотов от начала до конца рабочего дня
// с шагом в длительность слота; конец дня не включается
func workdaySlots() ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	current := domain.WorkdayStart

	for current.IsBefore(domain.WorkdayEnd) {
		slots = append(slots, current)

		next, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		current = next
	}

	return slots, nil
}
