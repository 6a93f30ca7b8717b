package update_notes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/service/sessions"
	"github.com/m04kA/SMC-CoachingService/internal/service/sessions/models"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
)

type fakeService struct {
	got *models.UpdateNotesRequest
	err error
}

func (f *fakeService) UpdateNotes(_ context.Context, id int64, req *models.UpdateNotesRequest) (*models.SessionResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{ID: id, CoachNotes: req.Notes}, nil
}

func serve(svc SessionService, path, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/sessions/{sessionId}/notes", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPut)

	r := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	r = r.WithContext(middleware.WithUserID(r.Context(), 1))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/sessions/4/notes", `{"coachNotes":"работали над тестами"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(1), svc.got.UserID)
	require.NotNil(t, svc.got.Notes)
	assert.Equal(t, "работали над тестами", *svc.got.Notes)
}

func TestHandle_ClearNotes(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "/sessions/4/notes", `{"coachNotes":null}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.Notes)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/sessions/x/notes", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/sessions/4/notes", `[]`).Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: sessions.ErrPermissionDenied}, "/sessions/4/notes", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: sessions.ErrSessionNotFound}, "/sessions/4/notes", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{err: sessions.ErrInvalidInput}, "/sessions/4/notes", `{}`).Code)
}
