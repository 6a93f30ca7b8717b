package models

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// CreateSlotRequest запрос на создание слота
type CreateSlotRequest struct {
	UserID    int64
	Date      time.Time
	StartTime types.TimeString
}

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`      // "2025-10-15"
	StartTime   string `json:"startTime"` // "10:00"
	EndTime     string `json:"endTime"`   // "10:30"
	IsAvailable bool   `json:"isAvailable"`
}

// SlotListResponse слоты на дату
type SlotListResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}
	return &SlotResponse{
		ID:          s.ID,
		Date:        s.Date.Format(domain.DateFormat),
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime().String(),
		IsAvailable: s.IsAvailable,
	}
}

// FromDomainSlotList конвертирует список слотов в DTO
func FromDomainSlotList(date time.Time, slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Date:  date.Format(domain.DateFormat),
		Slots: make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		if item := FromDomainSlot(s); item != nil {
			resp.Slots = append(resp.Slots, *item)
		}
	}
	return resp
}
