package slots

import "errors"

var (
	// ErrPermissionDenied возвращается, когда пользователь не коуч и не администратор
	ErrPermissionDenied = errors.New("slots: permission denied")

	// ErrOutOfHours возвращается для времени вне рабочего дня
	ErrOutOfHours = errors.New("slots: time is outside working hours")

	// ErrDuplicateSlot возвращается, когда слот на эту дату и время уже существует
	ErrDuplicateSlot = errors.New("slots: slot already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)
