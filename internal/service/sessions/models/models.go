package models

import (
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// Request модели

// UpdateNotesRequest запрос на обновление заметок коуча
type UpdateNotesRequest struct {
	UserID int64
	Notes  *string // nil очищает заметки
}

// SearchRequest поиск по теме и имени клиента
type SearchRequest struct {
	UserID int64
	Query  string
}

// Response модели

// SessionResponse ответ с данными сессии
type SessionResponse struct {
	ID             int64     `json:"id"`
	ClientID       int64     `json:"clientId"`
	ClientUsername string    `json:"clientUsername"`
	SlotID         int64     `json:"slotId"`
	Subject        string    `json:"subject"`
	CoachNotes     *string   `json:"coachNotes,omitempty"`
	Date           string    `json:"date"`      // "2025-10-15"
	StartTime      string    `json:"startTime"` // "10:00"
	EndTime        string    `json:"endTime"`   // "10:30"
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// SessionListResponse ответ со списком сессий
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
}

// FromDomainSession конвертирует domain модель в DTO
func FromDomainSession(s *domain.Session) *SessionResponse {
	if s == nil {
		return nil
	}

	slot := domain.Slot{Date: s.Date, StartTime: s.StartTime}

	return &SessionResponse{
		ID:             s.ID,
		ClientID:       s.ClientID,
		ClientUsername: s.ClientUsername,
		SlotID:         s.SlotID,
		Subject:        s.Subject,
		CoachNotes:     s.CoachNotes,
		Date:           s.Date.Format(domain.DateFormat),
		StartTime:      s.StartTime.String(),
		EndTime:        slot.EndTime().String(),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// FromDomainSessionList конвертирует список domain моделей в DTO
func FromDomainSessionList(sessions []*domain.Session) *SessionListResponse {
	resp := &SessionListResponse{
		Sessions: make([]SessionResponse, 0, len(sessions)),
	}

	for _, s := range sessions {
		if item := FromDomainSession(s); item != nil {
			resp.Sessions = append(resp.Sessions, *item)
		}
	}

	return resp
}
