package book_session

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	bookSession "github.com/m04kA/SMC-CoachingService/internal/usecase/book_session"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

var errInvalidDatetime = errors.New("invalid datetime")

// Форматы datetime-local из формы и ISO без зоны
var datetimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// BookSessionRequest HTTP request model
type BookSessionRequest struct {
	Datetime string `json:"datetime"` // "2025-10-15T10:00"
	Subject  string `json:"subject"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID        int64  `json:"id"`
	ClientID  int64  `json:"clientId"`
	SlotID    int64  `json:"slotId"`
	Subject   string `json:"subject"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Секунды игнорируются: слот ищется по дате и HH:MM
func (r *BookSessionRequest) ToUseCaseRequest(clientID int64) (*bookSession.Request, error) {
	at, err := parseDatetime(r.Datetime)
	if err != nil {
		return nil, err
	}

	return &bookSession.Request{
		ClientID:  clientID,
		Date:      time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC),
		StartTime: types.NewTimeString(at),
		Subject:   r.Subject,
	}, nil
}

func parseDatetime(value string) (time.Time, error) {
	for _, layout := range datetimeLayouts {
		if at, err := time.Parse(layout, value); err == nil {
			return at, nil
		}
	}
	return time.Time{}, errInvalidDatetime
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSession.Response) *SessionResponse {
	return &SessionResponse{
		ID:        resp.ID,
		ClientID:  resp.ClientID,
		SlotID:    resp.SlotID,
		Subject:   resp.Subject,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
