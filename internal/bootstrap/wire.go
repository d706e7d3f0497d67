package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/cinevault/movies-service/internal/application/auth"
	"github.com/cinevault/movies-service/internal/application/movies"
	"github.com/cinevault/movies-service/internal/application/users"
	"github.com/cinevault/movies-service/internal/config"
	"github.com/cinevault/movies-service/internal/domain"
	"github.com/cinevault/movies-service/internal/infrastructure/db/postgres"
	"github.com/cinevault/movies-service/internal/infrastructure/redis"
	"github.com/cinevault/movies-service/internal/infrastructure/security"
	"github.com/cinevault/movies-service/internal/infrastructure/swapi"
	"github.com/cinevault/movies-service/internal/logger"
	http_handlers "github.com/cinevault/movies-service/internal/transport/http/handlers"
	"github.com/cinevault/movies-service/internal/transport/http/middleware"
	"github.com/cinevault/movies-service/internal/transport/http/response"
	"github.com/cinevault/movies-service/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(addr string, debug bool) (*sql.DB, error)

	NewRedis func(addr, password string, db int) *redis.Client

	NewCatalog func(baseURL string) movies.CatalogSource

	NewRouter func(router.Deps) (http.Handler, error)
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB:      config.NewDB,
		NewRedis:   redis.New,
		NewCatalog: func(baseURL string) movies.CatalogSource { return swapi.NewClient(baseURL) },
		NewRouter:  router.New,
	}
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	if deps.LoadConfig == nil || deps.NewDB == nil || deps.NewCatalog == nil || deps.NewRouter == nil {
		return nil, nil, ErrNilDep
	}

	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db + migrations
	db, err := deps.NewDB(cfg.DBAddr, cfg.DBDebug)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	if err := postgres.RunMigrations(context.Background(), db); err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	// 2) repos
	userRepo := postgres.NewUserRepo(db)
	movieRepo := postgres.NewMovieRepo(db)

	// 3) redis (best-effort; login rate limiting only)
	var fwLimiter *redis.FixedWindowLimiter
	if cfg.RedisAddr != "" && deps.NewRedis != nil {
		c := deps.NewRedis(cfg.RedisAddr, "", 0)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := c.Ping(ctx); err != nil {
			logger.Logger.Warn().Err(err).Msg("redis unavailable; login rate limit disabled")
			_ = c.Close()
		} else {
			logger.Logger.Info().Msg("redis connected")
			fwLimiter = redis.NewFixedWindowLimiter(c)
			cleanupFns = append(cleanupFns, func() { _ = c.Close() })
		}
	}

	// 4) security
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	signer := security.NewJWTSigner(cfg.JWTSecret, cfg.JWTIssuer)

	// seed (dev only)
	if cfg.Env == "dev" {
		postgres.SeedUsers(context.Background(), userRepo, hasher)
	}

	// 5) services
	authSvc := auth.NewService(userRepo, hasher, signer, auth.Config{
		AccessTTL: cfg.AccessTokenTTL,
	})
	usersSvc := users.NewService(userRepo, hasher)

	catalog := deps.NewCatalog(cfg.StarWarsAPIBase)
	moviesSvc := movies.NewService(movieRepo, catalog)

	// 6) handlers + middleware
	authH := http_handlers.NewAuthHandler(authSvc)
	usersH := http_handlers.NewUsersHandler(usersSvc)
	moviesH := http_handlers.NewMoviesHandler(moviesSvc)
	healthH := http_handlers.NewHealthHandler(db)

	authMW := middleware.Auth(signer, response.WriteError)
	memberMW := middleware.RequireRole(userRepo, response.WriteError, domain.RoleRegular, domain.RoleAdmin)
	adminMW := middleware.RequireRole(userRepo, response.WriteError, domain.RoleAdmin)

	var loginRateMW func(http.Handler) http.Handler
	if fwLimiter != nil {
		loginRateMW = middleware.RateLimitFixedWindow(
			fwLimiter,
			middleware.FixedWindowConfig{
				RouteKey: "auth_login",
				Limit:    cfg.LoginRateLimit,
				Window:   cfg.LoginRateWindow,
			},
			response.WriteError,
		)
	}

	handler, err := deps.NewRouter(router.Deps{
		Health: healthH,
		Auth:   authH,
		Users:  usersH,
		Movies: moviesH,

		AuthMW:   authMW,
		MemberMW: memberMW,
		AdminMW:  adminMW,

		// User read/delete routes are deliberately open; guard them here
		// if that ever changes.
		UsersMW:     nil,
		LoginRateMW: loginRateMW,
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	handler = middleware.RequestID(handler)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	cleanup := func() { runCleanup(cleanupFns) }
	return srv, cleanup, nil
}

func runCleanup(fns []func()) {
	// reverse order, like defers
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}

// ErrNilDep reports a missing injected dependency early, before any
// connection is attempted.
var ErrNilDep = errors.New("bootstrap: nil dependency")
