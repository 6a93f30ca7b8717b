package signup

import "github.com/m04kA/SMC-CoachingService/internal/service/users/models"

// SignupRequest HTTP request model
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SignupRequest) ToServiceRequest() *models.SignupRequest {
	return &models.SignupRequest{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}
