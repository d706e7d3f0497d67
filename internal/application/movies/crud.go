package movies

import (
	"context"

	"github.com/cinevault/movies-service/internal/domain"
)

func (s *Service) List(ctx context.Context) ([]domain.Movie, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Movie, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, m domain.Movie) (domain.Movie, error) {
	if m.Title == "" {
		return domain.Movie{}, domain.ErrMissingField("title")
	}
	if len(m.Genres) == 0 {
		return domain.Movie{}, domain.ErrMissingField("genres")
	}
	return s.repo.Create(ctx, m)
}

func (s *Service) Update(ctx context.Context, id int64, upd domain.MovieUpdate) (domain.Movie, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrMovieNotFound()
	}
	return nil
}
