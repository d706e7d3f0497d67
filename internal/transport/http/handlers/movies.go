package http_handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cinevault/movies-service/internal/application/movies"
	"github.com/cinevault/movies-service/internal/domain"
	"github.com/cinevault/movies-service/internal/logger"
	"github.com/cinevault/movies-service/internal/transport/http/dto"
	"github.com/cinevault/movies-service/internal/transport/http/response"
)

type MoviesHandler struct {
	svc *movies.Service
}

func NewMoviesHandler(svc *movies.Service) *MoviesHandler {
	return &MoviesHandler{svc: svc}
}

func movieID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidField("id", "must be a positive integer")
	}
	return id, nil
}

func (h *MoviesHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewMovieViews(list))
}

func (h *MoviesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewMovieView(m))
}

func (h *MoviesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMovieRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	m, err := h.svc.Create(r.Context(), req.ToDomain())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("movie_id", m.ID).
		Str("title", m.Title).
		Msg("movie_created")

	response.Created(w, dto.NewMovieView(m))
}

func (h *MoviesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req dto.UpdateMovieRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	m, err := h.svc.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewMovieView(m))
}

func (h *MoviesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := movieID(r)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("movie_id", id).
		Msg("movie_deleted")

	response.OK(w, struct{}{})
}

func (h *MoviesHandler) SyncStarWars(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SyncStarWars(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int("inserted", res.Inserted).
		Int("skipped", res.Skipped).
		Msg("catalog_synchronized")

	response.OK(w, dto.SyncView{
		Message:  res.Message,
		Inserted: res.Inserted,
		Skipped:  res.Skipped,
	})
}
