package ollama

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("ollama client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Ollama
	ErrInvalidResponse = errors.New("ollama client: invalid response")

	// ErrUnavailable возвращается, когда Ollama недоступна (сеть, таймаут, 5xx)
	ErrUnavailable = errors.New("ollama client: service unavailable")
)
