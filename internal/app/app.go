package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/xw1nchester/shopbuddy-backend/internal/assistant/gateway"
	assistanthandler "github.com/xw1nchester/shopbuddy-backend/internal/assistant/handler"
	assistantservice "github.com/xw1nchester/shopbuddy-backend/internal/assistant/service"
	"github.com/xw1nchester/shopbuddy-backend/internal/config"
	"github.com/xw1nchester/shopbuddy-backend/internal/handlers"
	"github.com/xw1nchester/shopbuddy-backend/internal/location"
	storedb "github.com/xw1nchester/shopbuddy-backend/internal/market/store/db"
	storehandler "github.com/xw1nchester/shopbuddy-backend/internal/market/store/handler"
	storeservice "github.com/xw1nchester/shopbuddy-backend/internal/market/store/service"
	sessionhandler "github.com/xw1nchester/shopbuddy-backend/internal/session/handler"
	sessionservice "github.com/xw1nchester/shopbuddy-backend/internal/session/service"
	minioclient "github.com/xw1nchester/shopbuddy-backend/pkg/client/minio"
	pgclient "github.com/xw1nchester/shopbuddy-backend/pkg/client/postgresql"
	pgtx "github.com/xw1nchester/shopbuddy-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"

	_ "github.com/xw1nchester/shopbuddy-backend/docs"
)

type App struct {
	HTTPServer *http.Server
	log        *zap.Logger
	closers    []func()
}

// NewApp builds the catalog source named in cfg, validates it and mounts
// every handler under /api.
func NewApp(ctx context.Context, log *zap.Logger, cfg config.Config) (*App, error) {
	a := &App{log: log}

	catalog, err := a.newCatalog(ctx, cfg)
	if err != nil {
		a.close()
		return nil, err
	}

	storeService := storeservice.New(catalog, log)
	if err := storeService.CheckCatalog(ctx); err != nil {
		a.close()
		return nil, fmt.Errorf("invalid store catalog: %w", err)
	}

	gatewayClient := gateway.New(gateway.Config{
		URL:         cfg.Gateway.URL,
		Model:       cfg.Gateway.Model,
		MaxTokens:   cfg.Gateway.MaxTokens,
		Temperature: cfg.Gateway.Temperature,
		Timeout:     cfg.Gateway.Timeout,
	})

	assistantService := assistantservice.New(
		gatewayClient,
		assistantservice.EnvKey(cfg.Gateway.APIKeyEnv),
		cfg.Gateway.CurrencySymbol,
		log,
	)

	sessionService := sessionservice.New(
		storeService,
		assistantService,
		sessionservice.Config{
			Location: location.Options{
				HighAccuracy: cfg.Location.HighAccuracy,
				Timeout:      cfg.Location.Timeout,
				MaximumAge:   cfg.Location.MaximumAge,
			},
			IdleTTL: cfg.Session.IdleTTL,
		},
		log,
	)

	apiHandlers := []handlers.Handler{
		storehandler.New(storeService, log),
		assistanthandler.New(assistantService, storeService, log),
		sessionhandler.New(sessionService, log),
	}

	router := chi.NewRouter()

	router.Use(
		middleware.RequestID,
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"authorization", "x-client-info", "apikey", "content-type"},
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		for _, h := range apiHandlers {
			h.Register(r)
		}
	})

	a.HTTPServer = &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return a, nil
}

func (a *App) newCatalog(ctx context.Context, cfg config.Config) (storeservice.Repository, error) {
	switch cfg.Catalog.Source {
	case config.CatalogPostgres:
		pgClient, err := pgclient.NewClient(ctx, pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pgClient.Close)

		a.log.Info("using postgres store catalog", zap.String("host", cfg.PostgreSQL.Host))

		return storedb.NewPostgres(pgClient, pgtx.NewReadOnlyManager(pgClient), a.log), nil
	case config.CatalogMinio:
		minioClient, err := minioclient.New(ctx, minioclient.Config{
			Endpoint:        cfg.Minio.Endpoint,
			AccessKeyID:     cfg.Minio.AccessKeyID,
			SecretAccessKey: cfg.Minio.SecretAccessKey,
			UseSSL:          cfg.Minio.UseSSL,
		}, cfg.Catalog.Bucket)
		if err != nil {
			return nil, err
		}

		a.log.Info(
			"using object storage store catalog",
			zap.String("bucket", cfg.Catalog.Bucket),
			zap.String("object", cfg.Catalog.Object),
		)

		return storedb.NewObject(minioClient, cfg.Catalog.Bucket, cfg.Catalog.Object, a.log), nil
	default:
		a.log.Info("using built-in store catalog")

		return storedb.NewStatic(storedb.DefaultStores()), nil
	}
}

func (a *App) MustRun() {
	a.log.Info("starting server", zap.String("addr", a.HTTPServer.Addr))

	if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic("failed to start server: " + err.Error())
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	defer a.close()

	return a.HTTPServer.Shutdown(ctx)
}

func (a *App) close() {
	for _, closeFn := range a.closers {
		closeFn()
	}
	a.closers = nil
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.String("remote", r.RemoteAddr),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200		{string}	string
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
