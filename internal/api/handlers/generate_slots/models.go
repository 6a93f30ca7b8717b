package generate_slots

import (
	"github.com/m04kA/SMC-CoachingService/internal/domain"
	generateSlots "github.com/m04kA/SMC-CoachingService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	Date string `json:"date"` // "2025-10-15"
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	Date         string   `json:"date"`
	CreatedCount int      `json:"createdCount"`
	SkippedCount int      `json:"skippedCount"`
	Created      []string `json:"created"`
	Skipped      []string `json:"skipped"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	return &GenerateSlotsResponse{
		Date:         resp.Date.Format(domain.DateFormat),
		CreatedCount: len(resp.Created),
		SkippedCount: len(resp.Skipped),
		Created:      toStrings(resp.Created),
		Skipped:      toStrings(resp.Skipped),
	}
}

func toStrings(times []types.TimeString) []string {
	out := make([]string, 0, len(times))
	for _, t := range times {
		out = append(out, t.String())
	}
	return out
}
