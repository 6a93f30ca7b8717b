package domain

import "time"

// User represents an account: a client, a coach or an administrator
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsCoach      bool
	IsAdmin      bool
	CreatedAt    time.Time
}

// CanManageSessions true для коуча и администратора
func (u *User) CanManageSessions() bool {
	return u.IsCoach || u.IsAdmin
}
