package book_session

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	bookSession "github.com/m04kA/SMC-CoachingService/internal/usecase/book_session"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

type fakeUseCase struct {
	got *bookSession.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookSession.Request) (*bookSession.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &bookSession.Response{
		ID:        1,
		ClientID:  req.ClientID,
		SlotID:    5,
		Subject:   req.Subject,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   types.MustTimeString("10:30"),
		CreatedAt: time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC),
	}, nil
}

func doRequest(h *Handler, body string, withUser bool) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(body))
	if withUser {
		r = r.WithContext(middleware.WithUserID(r.Context(), 7))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, r)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := doRequest(h, `{"datetime":"2025-10-15T10:00:45","subject":"Go"}`, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.ClientID)
	assert.Equal(t, types.TimeString("10:00"), uc.got.StartTime)
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), uc.got.Date)
	assert.Contains(t, rec.Body.String(), `"endTime":"10:30"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"bad body", `{`, nil, http.StatusBadRequest},
		{"bad datetime", `{"datetime":"15.10.2025 10:00","subject":"Go"}`, nil, http.StatusBadRequest},
		{"invalid input", `{"datetime":"2025-10-15T10:00","subject":""}`, bookSession.ErrInvalidInput, http.StatusBadRequest},
		{"out of hours", `{"datetime":"2025-10-15T08:00","subject":"Go"}`, bookSession.ErrOutOfHours, http.StatusBadRequest},
		{"no such slot", `{"datetime":"2025-10-15T10:00","subject":"Go"}`, bookSession.ErrNoSuchSlot, http.StatusNotFound},
		{"slot unavailable", `{"datetime":"2025-10-15T10:00","subject":"Go"}`, bookSession.ErrSlotUnavailable, http.StatusConflict},
		{"too close", `{"datetime":"2025-10-15T10:00","subject":"Go"}`, fmt.Errorf("%w: 09:55", bookSession.ErrTooClose), http.StatusConflict},
		{"internal", `{"datetime":"2025-10-15T10:00","subject":"Go"}`, bookSession.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := doRequest(h, tt.body, true)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_Unauthorized(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, logger.NewNop())
	rec := doRequest(h, `{"datetime":"2025-10-15T10:00","subject":"Go"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
