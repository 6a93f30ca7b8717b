package book_session

import "errors"

var (
	// ErrOutOfHours возвращается, когда время вне рабочего дня (09:00 - 18:00)
	ErrOutOfHours = errors.New("book_session: time is outside working hours")

	// ErrNoSuchSlot возвращается, когда слота с такой датой и временем нет
	ErrNoSuchSlot = errors.New("book_session: no slot at this date and time")

	// ErrSlotUnavailable возвращается, когда слот уже занят (в том числе при проигранной гонке)
	ErrSlotUnavailable = errors.New("book_session: slot is not available")

	// ErrTooClose возвращается, когда в этот день уже есть сессия в пределах 10 минут
	ErrTooClose = errors.New("book_session: another session is too close")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_session: internal error")
)
