package book_session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/session"
	slotRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
	"github.com/m04kA/SMC-CoachingService/pkg/txmanager"
	"github.com/m04kA/SMC-CoachingService/pkg/types"
)

// fakeStore хранилище слотов и сессий с теми же гарантиями, что дает схема БД:
// CAS на is_available и уникальность sessions.slot_id
type fakeStore struct {
	mu       sync.Mutex
	slots    map[int64]*domain.Slot
	sessions []*domain.Session
	nextID   int64
}

func newFakeStore(slots ...*domain.Slot) *fakeStore {
	s := &fakeStore{slots: make(map[int64]*domain.Slot), nextID: 1000}
	for _, slot := range slots {
		s.slots[slot.ID] = slot
	}
	return s
}

func (s *fakeStore) GetByDateTime(_ context.Context, date time.Time, startTime types.TimeString) (*domain.Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range s.slots {
		if isSameDay(slot.Date, date) && slot.StartTime.Equal(startTime) {
			cp := *slot
			return &cp, nil
		}
	}
	return nil, slotRepo.ErrSlotNotFound
}

func (s *fakeStore) MarkBooked(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[id]
	if !ok || !slot.IsAvailable {
		return slotRepo.ErrSlotNotAvailable
	}
	slot.IsAvailable = false
	return nil
}

func (s *fakeStore) Create(_ context.Context, session *domain.Session) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.sessions {
		if existing.SlotID == session.SlotID {
			return nil, sessionRepo.ErrSlotAlreadyBooked
		}
	}
	s.nextID++
	cp := *session
	cp.ID = s.nextID
	cp.CreatedAt = time.Now()
	slot := s.slots[session.SlotID]
	cp.Date, cp.StartTime = slot.Date, slot.StartTime
	s.sessions = append(s.sessions, &cp)
	out := cp
	return &out, nil
}

func (s *fakeStore) List(_ context.Context, filter domain.SessionsFilter) ([]*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Session, 0)
	for _, session := range s.sessions {
		if filter.Date != nil && !isSameDay(session.Date, *filter.Date) {
			continue
		}
		cp := *session
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeStore) sessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *fakeStore) isAvailable(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slots[id].IsAvailable
}

// passthroughTx не изолирует вызовы: защита от двойного бронирования обязана держаться на CAS и уникальности
type passthroughTx struct {
	err error
}

func (tx *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return tx.err
}

type fakeMetrics struct {
	mu      sync.Mutex
	results map[string]int
}

func (m *fakeMetrics) RecordBookingAttempt(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.results == nil {
		m.results = make(map[string]int)
	}
	m.results[result]++
}

func newUseCase(store *fakeStore) (*UseCase, *fakeMetrics) {
	m := &fakeMetrics{}
	return NewUseCase(store, store, &passthroughTx{}, m, logger.NewNop()), m
}

func request(hhmm string) *Request {
	return &Request{ClientID: 1, Date: day, StartTime: types.MustTimeString(hhmm), Subject: "Career plan"}
}

func TestExecute_Success(t *testing.T) {
	store := newFakeStore(slotAt(1, day, "10:00", true), slotAt(2, day, "10:30", true))
	uc, m := newUseCase(store)

	resp, err := uc.Execute(context.Background(), request("10:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.SlotID)
	assert.Equal(t, types.TimeString("10:30"), resp.EndTime)
	assert.Equal(t, "Career plan", resp.Subject)
	assert.Equal(t, 1, store.sessionCount())
	assert.False(t, store.isAvailable(1))
	assert.True(t, store.isAvailable(2), "other slots untouched")
	assert.Equal(t, 1, m.results[resultSuccess])
}

func TestExecute_OutOfHoursRegardlessOfSlot(t *testing.T) {
	store := newFakeStore(slotAt(1, day, "08:30", true), slotAt(2, day, "18:00", true))
	uc, m := newUseCase(store)

	for _, hhmm := range []string{"08:30", "18:00", "20:00"} {
		_, err := uc.Execute(context.Background(), request(hhmm))
		assert.ErrorIs(t, err, ErrOutOfHours, hhmm)
	}
	assert.Equal(t, 0, store.sessionCount())
	assert.Equal(t, 3, m.results[resultOutOfHours])
}

func TestExecute_NoSuchSlot(t *testing.T) {
	store := newFakeStore(slotAt(1, day, "10:00", true))
	uc, _ := newUseCase(store)

	_, err := uc.Execute(context.Background(), request("10:15"))
	assert.ErrorIs(t, err, ErrNoSuchSlot)

	other := request("10:00")
	other.Date = day.AddDate(0, 0, 1)
	_, err = uc.Execute(context.Background(), other)
	assert.ErrorIs(t, err, ErrNoSuchSlot)
}

func TestExecute_SlotUnavailable(t *testing.T) {
	store := newFakeStore(slotAt(1, day, "10:00", false))
	uc, _ := newUseCase(store)

	_, err := uc.Execute(context.Background(), request("10:00"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 0, store.sessionCount())
}

func TestExecute_SecondBookingOfSameSlot(t *testing.T) {
	store := newFakeStore(slotAt(1, day, "10:00", true))
	uc, _ := newUseCase(store)

	_, err := uc.Execute(context.Background(), request("10:00"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), request("10:00"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Equal(t, 1, store.sessionCount())
}

func TestExecute_MinimumGap(t *testing.T) {
	store := newFakeStore(
		slotAt(1, day, "10:00", true),
		slotAt(2, day, "09:49", true),
		slotAt(3, day, "09:50", true),
		slotAt(4, day, "10:10", true),
		slotAt(5, day, "10:11", true),
	)
	uc, _ := newUseCase(store)

	_, err := uc.Execute(context.Background(), request("10:00"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), request("09:50"))
	assert.ErrorIs(t, err, ErrTooClose)
	_, err = uc.Execute(context.Background(), request("10:10"))
	assert.ErrorIs(t, err, ErrTooClose)

	_, err = uc.Execute(context.Background(), request("09:49"))
	assert.NoError(t, err)
	_, err = uc.Execute(context.Background(), request("10:11"))
	assert.NoError(t, err)

	assert.Equal(t, 3, store.sessionCount())
}

func TestExecute_ConcurrentBookingSingleWinner(t *testing.T) {
	store := newFakeStore(slotAt(1, day, "11:00", true))
	uc, m := newUseCase(store)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			req := request("11:00")
			req.ClientID = int64(i + 1)
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	close(start)
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, store.sessionCount())
	assert.False(t, store.isAvailable(1))
	assert.Equal(t, attempts-1, m.results[resultSlotUnavailable])
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, m := newUseCase(newFakeStore())

	req := request("10:00")
	req.Subject = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 1, m.results[resultInvalidInput])
}

func TestExecute_CommitFailureIsInternal(t *testing.T) {
	store := newFakeStore(slotAt(1, day, "10:00", true))
	m := &fakeMetrics{}
	uc := NewUseCase(store, store, &passthroughTx{err: errors.New("connection lost")}, m, logger.NewNop())

	_, err := uc.Execute(context.Background(), request("10:00"))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, m.results[resultError])
}

func TestExecute_OutOfHoursBeforeSubjectCheck(t *testing.T) {
	uc, m := newUseCase(newFakeStore(slotAt(1, day, "08:00", true)))

	req := request("08:00")
	req.Subject = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutOfHours)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 1, m.results[resultOutOfHours])
	assert.Zero(t, m.results[resultInvalidInput])
}

func TestExecute_MalformedTimeIsInvalidInput(t *testing.T) {
	uc, m := newUseCase(newFakeStore())

	req := request("10:00")
	req.StartTime = "25:99"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 1, m.results[resultInvalidInput])
}

func TestExecute_DatabaseRaceIsSlotUnavailable(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"serialization failure on commit", fmt.Errorf("%w: %w", txmanager.ErrCommit, &pq.Error{Code: "40001"})},
		{"deadlock on commit", fmt.Errorf("%w: %w", txmanager.ErrCommit, &pq.Error{Code: "40P01"})},
		{"unique violation", fmt.Errorf("%w: %w", txmanager.ErrCommit, &pq.Error{Code: "23505", Constraint: "sessions_slot_id_key"})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore(slotAt(1, day, "10:00", true))
			m := &fakeMetrics{}
			uc := NewUseCase(store, store, &passthroughTx{err: tc.err}, m, logger.NewNop())

			_, err := uc.Execute(context.Background(), request("10:00"))
			assert.ErrorIs(t, err, ErrSlotUnavailable)
			assert.NotErrorIs(t, err, ErrInternal)
			assert.Equal(t, 1, m.results[resultSlotUnavailable])
			assert.Zero(t, m.results[resultError])
		})
	}
}
