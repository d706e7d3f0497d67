package auth

import (
	"context"
	"time"

	"github.com/cinevault/movies-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for credential lookups.
Only describes WHAT the auth service needs, not HOW it's stored.
*/
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt / argon2.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + auth middleware.

The token carries identity only (subject id + username). Role is
deliberately NOT embedded: authorization re-reads it from storage per
request, so the token is an identity assertion, not an authorization cache.
*/
type TokenClaims struct {
	UserID   string
	Username string
	Exp      time.Time
}

type TokenSigner interface {
	SignAccessToken(userID, username string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}
