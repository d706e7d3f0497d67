package dto

import (
	"github.com/cinevault/movies-service/internal/domain"
)

type CreateMovieRequest struct {
	Title    string   `json:"title" validate:"required"`
	Year     int      `json:"year" validate:"required"`
	Director string   `json:"director" validate:"required"`
	Genres   []string `json:"genres" validate:"required,min=1,dive,required"`
	Score    float64  `json:"score"`
}

func (r *CreateMovieRequest) Validate() error {
	return checkStruct(r)
}

func (r *CreateMovieRequest) ToDomain() domain.Movie {
	return domain.Movie{
		Title:    r.Title,
		Year:     r.Year,
		Director: r.Director,
		Genres:   r.Genres,
		Score:    r.Score,
	}
}

// UpdateMovieRequest carries a partial update; absent fields stay untouched.
type UpdateMovieRequest struct {
	Title    *string  `json:"title" validate:"omitempty,min=1"`
	Year     *int     `json:"year"`
	Director *string  `json:"director"`
	Genres   []string `json:"genres" validate:"omitempty,min=1,dive,required"`
	Score    *float64 `json:"score"`
}

func (r *UpdateMovieRequest) Validate() error {
	return checkStruct(r)
}

func (r *UpdateMovieRequest) ToDomain() domain.MovieUpdate {
	return domain.MovieUpdate{
		Title:    r.Title,
		Year:     r.Year,
		Director: r.Director,
		Genres:   r.Genres,
		Score:    r.Score,
	}
}

type MovieView struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Director string   `json:"director"`
	Genres   []string `json:"genres"`
	Score    float64  `json:"score"`
}

func NewMovieView(m domain.Movie) MovieView {
	return MovieView{
		ID:       m.ID,
		Title:    m.Title,
		Year:     m.Year,
		Director: m.Director,
		Genres:   m.Genres,
		Score:    m.Score,
	}
}

func NewMovieViews(list []domain.Movie) []MovieView {
	out := make([]MovieView, 0, len(list))
	for _, m := range list {
		out = append(out, NewMovieView(m))
	}
	return out
}

type SyncView struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
}
