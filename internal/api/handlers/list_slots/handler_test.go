package list_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CoachingService/internal/service/slots/models"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
)

type fakeService struct {
	date          time.Time
	onlyAvailable bool
	err           error
}

func (f *fakeService) ListByDate(_ context.Context, date time.Time, onlyAvailable bool) (*models.SlotListResponse, error) {
	f.date, f.onlyAvailable = date, onlyAvailable
	if f.err != nil {
		return nil, f.err
	}
	return &models.SlotListResponse{
		Date:  date.Format("2006-01-02"),
		Slots: []models.SlotResponse{{ID: 1, StartTime: "09:00", EndTime: "09:30", IsAvailable: true}},
	}, nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2025-10-15&available=true", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.onlyAvailable)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), svc.date)
	assert.Contains(t, rec.Body.String(), `"startTime":"09:00"`)
}

func TestHandle_BadParams(t *testing.T) {
	h := NewHandler(&fakeService{}, logger.NewNop())

	for _, target := range []string{
		"/api/v1/slots",
		"/api/v1/slots?date=15.10.2025",
		"/api/v1/slots?date=2025-10-15&available=maybe",
	} {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestHandle_ServiceError(t *testing.T) {
	h := NewHandler(&fakeService{err: errors.New("db down")}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2025-10-15", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
