package auth

import (
	"context"
	"strings"

	"github.com/cinevault/movies-service/internal/domain"
)

// ValidateUser checks a username/password pair against the store.
// IMPORTANT: unknown username and wrong password must fail with the exact
// same error, otherwise login becomes a username enumeration oracle.
func (s *Service) ValidateUser(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)

	if username == "" || password == "" {
		return domain.User{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		// Hide not-found behind invalid credentials; anything else is a
		// real failure and must surface as one.
		if domain.Is(err, "user_not_found") {
			return domain.User{}, domain.ErrInvalidCredentials()
		}
		return domain.User{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return domain.User{}, domain.ErrInvalidCredentials()
	}

	return u.WithoutSecret(), nil
}

// Login authenticates a user and issues a bearer token.
func (s *Service) Login(ctx context.Context, username, password string) (LoginResult, error) {
	u, err := s.ValidateUser(ctx, username, password)
	if err != nil {
		return LoginResult{}, err
	}

	access, err := s.signer.SignAccessToken(u.ID, u.Username, s.accessTTL)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}
