package users

import (
	"context"
	"strings"

	"github.com/cinevault/movies-service/internal/domain"
)

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(list))
	for _, u := range list {
		out = append(out, u.WithoutSecret())
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return u.WithoutSecret(), nil
}

// Delete removes an account by id. Deleting an absent id is an error,
// distinct from success.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.ErrMissingField("id")
	}

	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrUserNotFound()
	}
	return nil
}
