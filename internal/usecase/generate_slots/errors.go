package generate_slots

import "errors"

var (
	// ErrPermissionDenied возвращается, когда пользователь не коуч и не администратор
	ErrPermissionDenied = errors.New("generate_slots: permission denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
