package sessions

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/session"
	userRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CoachingService/internal/service/sessions/models"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
	"github.com/m04kA/SMC-CoachingService/pkg/ptr"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

type fakeSessions struct {
	items   map[int64]*domain.Session
	updated map[int64]*string
	filter  domain.SessionsFilter
}

func (f *fakeSessions) GetByID(_ context.Context, id int64) (*domain.Session, error) {
	if s, ok := f.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, sessionRepo.ErrSessionNotFound
}

func (f *fakeSessions) List(_ context.Context, filter domain.SessionsFilter) ([]*domain.Session, error) {
	f.filter = filter
	out := make([]*domain.Session, 0)
	for _, s := range f.items {
		if filter.ClientID != nil && s.ClientID != *filter.ClientID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(s.Subject), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSessions) UpdateNotes(_ context.Context, id int64, notes *string) error {
	if _, ok := f.items[id]; !ok {
		return sessionRepo.ErrSessionNotFound
	}
	if f.updated == nil {
		f.updated = make(map[int64]*string)
	}
	f.updated[id] = notes
	return nil
}

type fakeUsers map[int64]*domain.User

func (f fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

const (
	clientID = int64(1)
	otherID  = int64(2)
	coachID  = int64(3)
	adminID  = int64(4)
)

func newService() (*Service, *fakeSessions) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	sessions := &fakeSessions{items: map[int64]*domain.Session{
		10: {ID: 10, ClientID: clientID, SlotID: 1, Subject: "Career change", Date: day, StartTime: types.MustTimeString("10:00")},
		11: {ID: 11, ClientID: otherID, SlotID: 2, Subject: "Public speaking", Date: day, StartTime: types.MustTimeString("11:00")},
	}}
	users := fakeUsers{
		clientID: {ID: clientID, Username: "alice"},
		otherID:  {ID: otherID, Username: "bob"},
		coachID:  {ID: coachID, Username: "coach", IsCoach: true},
		adminID:  {ID: adminID, Username: "root", IsAdmin: true},
	}
	return NewService(sessions, users, logger.NewNop()), sessions
}

func TestGetByID(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.GetByID(context.Background(), 10, clientID)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, "10:30", resp.EndTime)

	_, err = svc.GetByID(context.Background(), 10, coachID)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 10, adminID)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 10, otherID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.GetByID(context.Background(), 99, clientID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateNotes_Coach(t *testing.T) {
	svc, store := newService()

	resp, err := svc.UpdateNotes(context.Background(), 10, &models.UpdateNotesRequest{
		UserID: coachID,
		Notes:  ptr.Ptr("  Work on the CV  "),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CoachNotes)
	assert.Equal(t, "Work on the CV", *resp.CoachNotes)
	assert.Equal(t, "Work on the CV", ptr.Value(store.updated[10]))
}

func TestUpdateNotes_NonCoachForbidden(t *testing.T) {
	svc, store := newService()

	for _, userID := range []int64{clientID, otherID, adminID} {
		_, err := svc.UpdateNotes(context.Background(), 10, &models.UpdateNotesRequest{UserID: userID, Notes: ptr.Ptr("x")})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	}
	assert.Empty(t, store.updated)
}

func TestUpdateNotes_NotFoundBeforePermission(t *testing.T) {
	svc, _ := newService()

	_, err := svc.UpdateNotes(context.Background(), 99, &models.UpdateNotesRequest{UserID: clientID, Notes: ptr.Ptr("x")})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateNotes_TooLong(t *testing.T) {
	svc, _ := newService()

	_, err := svc.UpdateNotes(context.Background(), 10, &models.UpdateNotesRequest{
		UserID: coachID,
		Notes:  ptr.Ptr(strings.Repeat("a", domain.MaxNotesLength+1)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearch_ClientSeesOwn(t *testing.T) {
	svc, store := newService()

	resp, err := svc.Search(context.Background(), &models.SearchRequest{UserID: clientID, Query: ""})
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, int64(10), resp.Sessions[0].ID)
	assert.Equal(t, clientID, ptr.Value(store.filter.ClientID))

	resp, err = svc.Search(context.Background(), &models.SearchRequest{UserID: coachID, Query: "speaking"})
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, int64(11), resp.Sessions[0].ID)
	assert.Nil(t, store.filter.ClientID)
}
