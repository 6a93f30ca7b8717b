package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды ошибок PostgreSQL, на которые реагирует сервис
const (
	CodeUniqueViolation      = "23505"
	CodeForeignKeyViolation  = "23503"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
)

func code(err error) (string, string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}

// IsUniqueViolation true для нарушения уникального индекса
func IsUniqueViolation(err error) bool {
	c, _, ok := code(err)
	return ok && c == CodeUniqueViolation
}

// IsUniqueViolationOf true для нарушения конкретного уникального индекса
func IsUniqueViolationOf(err error, constraint string) bool {
	c, name, ok := code(err)
	return ok && c == CodeUniqueViolation && name == constraint
}

// IsForeignKeyViolation true для нарушения внешнего ключа
func IsForeignKeyViolation(err error) bool {
	c, _, ok := code(err)
	return ok && c == CodeForeignKeyViolation
}

// IsSerializationFailure true, если транзакцию можно повторить (конфликт сериализации или дедлок)
func IsSerializationFailure(err error) bool {
	c, _, ok := code(err)
	return ok && (c == CodeSerializationFailure || c == CodeDeadlockDetected)
}
