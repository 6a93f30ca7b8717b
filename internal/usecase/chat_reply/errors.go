package chat_reply

import "errors"

var (
	// ErrInvalidInput возвращается при пустом или слишком длинном сообщении
	ErrInvalidInput = errors.New("chat_reply: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("chat_reply: internal error")
)
