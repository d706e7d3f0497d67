package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WithoutSecret returns a copy safe to hand to any outward-facing layer.
func (u User) WithoutSecret() User {
	u.PasswordHash = ""
	return u
}
