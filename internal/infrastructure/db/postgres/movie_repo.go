package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/cinevault/movies-service/internal/domain"
)

type MovieRepo struct {
	db *sql.DB
}

func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// Genres persist as a single comma-joined text column, mirroring how the
// catalog has always been stored. Titles carry no unique index: direct
// creates may produce duplicate titles, only the reconciler keys on them.

func joinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

func splitGenres(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

const movieColumns = `id, title, year, director, genres, score`

func scanMovie(row *sql.Row) (domain.Movie, error) {
	var m domain.Movie
	var genres string
	err := row.Scan(&m.ID, &m.Title, &m.Year, &m.Director, &genres, &m.Score)
	if err != nil {
		return domain.Movie{}, err
	}
	m.Genres = splitGenres(genres)
	return m, nil
}

func (r *MovieRepo) List(ctx context.Context) ([]domain.Movie, error) {
	const q = `
SELECT ` + movieColumns + `
FROM movies
ORDER BY id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var list []domain.Movie
	for rows.Next() {
		var m domain.Movie
		var genres string
		if err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.Director, &genres, &m.Score); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		m.Genres = splitGenres(genres)
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return list, nil
}

func (r *MovieRepo) GetByID(ctx context.Context, id int64) (domain.Movie, error) {
	const q = `
SELECT ` + movieColumns + `
FROM movies
WHERE id = $1
LIMIT 1;
`
	m, err := scanMovie(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Movie{}, domain.ErrMovieNotFound()
		}
		return domain.Movie{}, domain.ErrDBUnavailable(err)
	}
	return m, nil
}

func (r *MovieRepo) Create(ctx context.Context, m domain.Movie) (domain.Movie, error) {
	if m.Title == "" {
		return domain.Movie{}, domain.ErrMissingField("title")
	}

	const q = `
INSERT INTO movies (title, year, director, genres, score)
VALUES ($1,$2,$3,$4,$5)
RETURNING ` + movieColumns + `;
`
	created, err := scanMovie(r.db.QueryRowContext(ctx, q,
		m.Title, m.Year, m.Director, joinGenres(m.Genres), m.Score,
	))
	if err != nil {
		return domain.Movie{}, domain.ErrDBUnavailable(err)
	}
	return created, nil
}

func (r *MovieRepo) Update(ctx context.Context, id int64, upd domain.MovieUpdate) (domain.Movie, error) {
	const q = `
UPDATE movies
SET title    = COALESCE($2, title),
    year     = COALESCE($3, year),
    director = COALESCE($4, director),
    genres   = COALESCE($5, genres),
    score    = COALESCE($6, score)
WHERE id = $1
RETURNING ` + movieColumns + `;
`
	var genres *string
	if upd.Genres != nil {
		g := joinGenres(upd.Genres)
		genres = &g
	}

	m, err := scanMovie(r.db.QueryRowContext(ctx, q,
		id, upd.Title, upd.Year, upd.Director, genres, upd.Score,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Movie{}, domain.ErrMovieNotFound()
		}
		return domain.Movie{}, domain.ErrDBUnavailable(err)
	}
	return m, nil
}

func (r *MovieRepo) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM movies WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, domain.ErrDBUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, domain.ErrDBUnavailable(err)
	}
	return n, nil
}

// CreateIfTitleAbsent is the reconciler's conditional write: existence check
// and insert in one statement instead of two round trips. Without a unique
// title index two concurrent passes can still both insert under READ
// COMMITTED; accepted and documented.
func (r *MovieRepo) CreateIfTitleAbsent(ctx context.Context, m domain.Movie) (bool, error) {
	if m.Title == "" {
		return false, domain.ErrMissingField("title")
	}

	const q = `
INSERT INTO movies (title, year, director, genres, score)
SELECT $1, $2, $3, $4, $5
WHERE NOT EXISTS (
	SELECT 1 FROM movies WHERE title = $1
);
`
	res, err := r.db.ExecContext(ctx, q,
		m.Title, m.Year, m.Director, joinGenres(m.Genres), m.Score,
	)
	if err != nil {
		return false, domain.ErrDBUnavailable(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, domain.ErrDBUnavailable(err)
	}
	return n > 0, nil
}
