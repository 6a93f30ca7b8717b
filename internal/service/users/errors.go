package users

import "errors"

var (
	// ErrUsernameTaken возвращается, когда имя пользователя занято
	ErrUsernameTaken = errors.New("users: username already taken")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("users: email already registered")

	// ErrInvalidCredentials возвращается при неверной паре логин/пароль
	ErrInvalidCredentials = errors.New("users: invalid credentials")

	// ErrPermissionDenied возвращается, когда у пользователя нет прав на операцию
	ErrPermissionDenied = errors.New("users: permission denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("users: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("users: internal error")
)
