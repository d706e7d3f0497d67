package movies

import (
	"context"

	"github.com/cinevault/movies-service/internal/domain"
)

/*
Repo
----
Persistence port for the movie catalog.
*/
type Repo interface {
	List(ctx context.Context) ([]domain.Movie, error)
	GetByID(ctx context.Context, id int64) (domain.Movie, error)
	Create(ctx context.Context, m domain.Movie) (domain.Movie, error)
	Update(ctx context.Context, id int64, upd domain.MovieUpdate) (domain.Movie, error)
	// Delete returns the number of rows removed; 0 means the id was absent.
	Delete(ctx context.Context, id int64) (int64, error)
	// CreateIfTitleAbsent inserts m unless a row with the same title already
	// exists, as a single conditional statement. It reports whether a row
	// was inserted. This is the reconciler's idempotent write primitive.
	CreateIfTitleAbsent(ctx context.Context, m domain.Movie) (bool, error)
}

/*
CatalogSource
-------------
External film listing the reconciler syncs from.
*/
type CatalogFilm struct {
	Title       string
	ReleaseDate string // YYYY-MM-DD
	Director    string
}

type CatalogSource interface {
	FetchFilms(ctx context.Context) ([]CatalogFilm, error)
}
