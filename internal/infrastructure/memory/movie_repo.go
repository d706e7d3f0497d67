package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cinevault/movies-service/internal/domain"
)

type MovieRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.Movie
}

func NewMovieRepo() *MovieRepo {
	return &MovieRepo{byID: make(map[int64]domain.Movie)}
}

func (r *MovieRepo) List(ctx context.Context) ([]domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Movie, 0, len(r.byID))
	for _, m := range r.byID {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *MovieRepo) GetByID(ctx context.Context, id int64) (domain.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return domain.Movie{}, domain.ErrMovieNotFound()
	}
	return m, nil
}

func (r *MovieRepo) Create(ctx context.Context, m domain.Movie) (domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m.ID = r.nextID
	r.byID[m.ID] = m
	return m, nil
}

func (r *MovieRepo) Update(ctx context.Context, id int64, upd domain.MovieUpdate) (domain.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[id]
	if !ok {
		return domain.Movie{}, domain.ErrMovieNotFound()
	}

	if upd.Title != nil {
		m.Title = *upd.Title
	}
	if upd.Year != nil {
		m.Year = *upd.Year
	}
	if upd.Director != nil {
		m.Director = *upd.Director
	}
	if upd.Genres != nil {
		m.Genres = upd.Genres
	}
	if upd.Score != nil {
		m.Score = *upd.Score
	}

	r.byID[id] = m
	return m, nil
}

func (r *MovieRepo) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

func (r *MovieRepo) CreateIfTitleAbsent(ctx context.Context, m domain.Movie) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Title == m.Title {
			return false, nil
		}
	}

	r.nextID++
	m.ID = r.nextID
	r.byID[m.ID] = m
	return true, nil
}
