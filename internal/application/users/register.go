package users

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/cinevault/movies-service/internal/domain"
)

// Register creates a new account: uniqueness pre-check, hash, persist.
// The pre-check is advisory; a registration racing past it still fails with
// the same conflict when the storage unique index rejects the insert.
func (s *Service) Register(ctx context.Context, username, password, email, role string) (domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return domain.User{}, domain.ErrMissingField("username")
	}
	if password == "" {
		return domain.User{}, domain.ErrMissingField("password")
	}
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if role == "" {
		role = string(domain.RoleRegular)
	}
	if !domain.IsValidRole(role) {
		return domain.User{}, domain.ErrInvalidRole(role)
	}

	taken, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, domain.ErrUserAlreadyExists()
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	return created, nil
}
