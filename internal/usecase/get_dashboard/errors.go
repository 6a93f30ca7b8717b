package get_dashboard

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь из токена не найден
	ErrUserNotFound = errors.New("get_dashboard: user not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_dashboard: internal error")
)
