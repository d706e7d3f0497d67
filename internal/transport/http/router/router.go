package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type UsersHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type MoviesHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SyncStarWars(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health HealthHandler
	Auth   AuthHandler
	Users  UsersHandler
	Movies MoviesHandler

	// AuthMW resolves the principal from a bearer token (401 short-circuit).
	AuthMW func(http.Handler) http.Handler
	// MemberMW / AdminMW re-read the principal's role from storage against
	// an allow-list (403). Both require AuthMW earlier in the chain.
	MemberMW func(http.Handler) http.Handler
	AdminMW  func(http.Handler) http.Handler

	// UsersMW optionally guards the user routes, which ship open. Keeping
	// the choice here makes hardening a wiring change, not a code change.
	UsersMW func(http.Handler) http.Handler
	// LoginRateMW optionally rate limits the login route.
	LoginRateMW func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Users == nil {
		return nil, fmt.Errorf("nil Users handler")
	}
	if deps.Movies == nil {
		return nil, fmt.Errorf("nil Movies handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.MemberMW == nil {
		return nil, fmt.Errorf("nil Member middleware")
	}
	if deps.AdminMW == nil {
		return nil, fmt.Errorf("nil Admin middleware")
	}

	r := chi.NewRouter()
	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	// --- Auth ---
	if deps.LoginRateMW != nil {
		r.With(deps.LoginRateMW).Post("/auth/login", deps.Auth.Login)
	} else {
		r.Post("/auth/login", deps.Auth.Login)
	}

	// --- Users ---
	r.Route("/users", func(r chi.Router) {
		if deps.UsersMW != nil {
			r.Use(deps.UsersMW)
		}
		r.Post("/", deps.Users.Create)
		r.Get("/", deps.Users.List)
		r.Get("/{id}", deps.Users.Get)
		r.Delete("/{id}", deps.Users.Delete)
	})

	// --- Movies ---
	r.Route("/movies", func(r chi.Router) {
		r.Use(deps.AuthMW)

		r.Get("/", deps.Movies.List)
		r.With(deps.MemberMW).Get("/{id}", deps.Movies.Get)

		// Admin-only catalog management
		r.Group(func(r chi.Router) {
			r.Use(deps.AdminMW)
			r.Post("/", deps.Movies.Create)
			r.Patch("/{id}", deps.Movies.Update)
			r.Delete("/{id}", deps.Movies.Delete)
			r.Post("/sync-starwars", deps.Movies.SyncStarWars)
		})
	})

	return r, nil
}
