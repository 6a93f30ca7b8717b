package update_notes

import (
	"github.com/m04kA/SMC-CoachingService/internal/service/sessions/models"
)

// UpdateNotesRequest HTTP request model
type UpdateNotesRequest struct {
	CoachNotes *string `json:"coachNotes"` // null очищает заметки
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateNotesRequest) ToServiceRequest(userID int64) *models.UpdateNotesRequest {
	return &models.UpdateNotesRequest{
		UserID: userID,
		Notes:  r.CoachNotes,
	}
}
