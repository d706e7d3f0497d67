package auth

import (
	"time"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner

	accessTTL time.Duration
}

type Config struct {
	AccessTTL time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	ttl := cfg.AccessTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		users:     users,
		hasher:    hasher,
		signer:    signer,
		accessTTL: ttl,
	}
}

// LoginResult is the token output for handlers/DTO mapping.
type LoginResult struct {
	AccessToken string
	TokenType   string // "Bearer"
	ExpiresIn   int64  // seconds
}
