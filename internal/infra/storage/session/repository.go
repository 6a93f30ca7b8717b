package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
	"github.com/m04kA/SMC-CoachingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachingService/pkg/pgerrors"
	"github.com/m04kA/SMC-CoachingService/pkg/psqlbuilder"
)

const uniqueSlotID = "sessions_slot_id_key"

// Repository репозиторий для работы с сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает сессию
// Если в контексте передана активная транзакция, использует её.
// Повторная запись на тот же слот возвращает ErrSlotAlreadyBooked.
func (r *Repository) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns("client_id", "slot_id", "subject", "coach_notes").
		Values(s.ClientID, s.SlotID, s.Subject, s.CoachNotes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolationOf(err, uniqueSlotID) {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает сессию по ID вместе с данными слота и клиента
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectSessions().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %w", ErrScanRow, err)
	}

	return s, nil
}

// List получает сессии по фильтру, упорядоченные по дате и времени слота (ASC)
//
// Примеры использования:
//
// 1. Все сессии клиента:
//    filter := domain.SessionsFilter{ClientID: &clientID}
//
// 2. Сессии на дату (проверка минимального разрыва):
//    filter := domain.SessionsFilter{Date: &date}
//
// 3. Поиск по теме или имени клиента:
//    filter := domain.SessionsFilter{Search: "python"}
func (r *Repository) List(ctx context.Context, filter domain.SessionsFilter) ([]*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectSessions().
		OrderBy("sl.date ASC", "sl.start_time ASC")

	if filter.ClientID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.client_id": *filter.ClientID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"sl.date": filter.Date.Format(domain.DateFormat)})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := psqlbuilder.ContainsPattern(search)
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"s.subject": pattern},
			squirrel.ILike{"u.username": pattern},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return sessions, nil
}

// UpdateNotes обновляет заметки коуча
func (r *Repository) UpdateNotes(ctx context.Context, id int64, notes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sessions").
		Set("coach_notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateNotes - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func selectSessions() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"s.id",
		"s.client_id",
		"s.slot_id",
		"s.subject",
		"s.coach_notes",
		"s.created_at",
		"s.updated_at",
		"sl.date",
		"sl.start_time",
		"u.username",
	).
		From("sessions s").
		Join("slots sl ON sl.id = s.slot_id").
		Join("users u ON u.id = s.client_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var s domain.Session
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.ClientID,
		&s.SlotID,
		&s.Subject,
		&s.CoachNotes,
		&createdAt,
		&updatedAt,
		&s.Date,
		&s.StartTime,
		&s.ClientUsername,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
