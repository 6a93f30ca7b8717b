package get_session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/service/sessions"
	"github.com/m04kA/SMC-CoachingService/internal/service/sessions/models"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetByID(_ context.Context, id int64, userID int64) (*models.SessionResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{ID: id, ClientID: userID, Subject: "Go"}, nil
}

func serve(svc SessionService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithUserID(r.Context(), 2)))
		})
	})
	router.HandleFunc("/sessions/{sessionId}", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&fakeService{}, "/sessions/10")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":10`)

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/sessions/abc").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: sessions.ErrSessionNotFound}, "/sessions/10").Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: sessions.ErrPermissionDenied}, "/sessions/10").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: sessions.ErrInternal}, "/sessions/10").Code)
}
