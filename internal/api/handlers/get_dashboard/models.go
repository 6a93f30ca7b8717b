package get_dashboard

import (
	"github.com/m04kA/SMC-CoachingService/internal/service/sessions/models"
	getDashboard "github.com/m04kA/SMC-CoachingService/internal/usecase/get_dashboard"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Username string                   `json:"username"`
	IsCoach  bool                     `json:"isCoach"`
	Upcoming []models.SessionResponse `json:"upcoming"`
	Past     []models.SessionResponse `json:"past"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDashboard.Response) *DashboardResponse {
	return &DashboardResponse{
		Username: resp.Username,
		IsCoach:  resp.IsCoach,
		Upcoming: models.FromDomainSessionList(resp.Upcoming).Sessions,
		Past:     models.FromDomainSessionList(resp.Past).Sessions,
	}
}
