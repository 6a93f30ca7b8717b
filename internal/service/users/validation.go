package users

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// normalizeCredentials приводит имя и email к каноничному виду и проверяет их
func normalizeCredentials(username, email, password string) (string, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || utf8.RuneCountInString(username) > domain.MaxUsernameLength {
		return "", "", fmt.Errorf("%w: username must be 1-%d characters", ErrInvalidInput, domain.MaxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return "", "", fmt.Errorf("%w: username may contain letters, digits and @/./+/-/_ only", ErrInvalidInput)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", "", fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	if utf8.RuneCountInString(password) < domain.MinPasswordLength {
		return "", "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	// bcrypt не принимает пароли длиннее 72 байт
	if len(password) > 72 {
		return "", "", fmt.Errorf("%w: password is too long", ErrInvalidInput)
	}

	return username, email, nil
}
