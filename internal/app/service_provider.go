package app

import (
	"context"

	authAPI "grape_backend/internal/api/auth"
	grapeAPI "grape_backend/internal/api/grape"
	"grape_backend/internal/config"
	"grape_backend/internal/config/env"
	"grape_backend/internal/middleware"
	"grape_backend/internal/ocr"
	"grape_backend/internal/repository"
	"grape_backend/internal/repository/auth_repo"
	"grape_backend/internal/repository/history_repo"
	"grape_backend/internal/repository/session_state_repo"
	"grape_backend/internal/repository/usage_repo"
	"grape_backend/internal/repository/user_repo"
	"grape_backend/internal/service"
	"grape_backend/internal/service/auth"
	"grape_backend/internal/service/extract"
	"grape_backend/internal/service/grape"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	// TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// Grape bits
	catalogCfg  config.CatalogConfig
	sessionRepo repository.SessionStateRepository
	historyRepo repository.HistoryRepository
	usageRepo   *usage_repo.UsageRepo
	grapeServ   service.GrapeService
	grapeHand   *grapeAPI.Handler

	// Extract bits
	ocrCfg      config.OCRConfig
	ocrEngine   *ocr.Engine
	extractServ service.ExtractService

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) CatalogCfg() config.CatalogConfig {
	if sp.catalogCfg == nil {
		cfg, err := env.NewCatalogConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get catalog config: " + err.Error())
		}
		sp.catalogCfg = cfg
	}
	return sp.catalogCfg
}

func (sp *ServiceProvider) SessionStateRepository(ctx context.Context) repository.SessionStateRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_state_repo.NewSessionStateRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) HistoryRepository(ctx context.Context) repository.HistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewHistoryRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) UsageRepository() *usage_repo.UsageRepo {
	if sp.usageRepo == nil {
		sp.usageRepo = usage_repo.NewUsageRepo()
	}
	return sp.usageRepo
}

func (sp *ServiceProvider) GrapeService(ctx context.Context) service.GrapeService {
	if sp.grapeServ == nil {
		sp.grapeServ = grape.NewGrapeService(
			sp.CatalogCfg().Machines(),
			sp.CatalogCfg().Strategies(),
			sp.SessionStateRepository(ctx),
			sp.HistoryRepository(ctx),
			sp.UsageRepository(),
			sp.TXManager(ctx),
		)
	}
	return sp.grapeServ
}

func (sp *ServiceProvider) OCRCfg() config.OCRConfig {
	if sp.ocrCfg == nil {
		cfg, err := env.NewOCRConfig()
		if err != nil {
			panic("failed to get ocr config: " + err.Error())
		}
		sp.ocrCfg = cfg
	}
	return sp.ocrCfg
}

func (sp *ServiceProvider) OCREngine() *ocr.Engine {
	if sp.ocrEngine == nil {
		engine, err := ocr.NewEngine(sp.OCRCfg().Languages())
		if err != nil {
			panic("failed to create ocr engine: " + err.Error())
		}
		sp.ocrEngine = engine
	}
	return sp.ocrEngine
}

func (sp *ServiceProvider) ExtractService() service.ExtractService {
	if sp.extractServ == nil {
		sp.extractServ = extract.NewExtractService(
			sp.CatalogCfg().Machines(),
			sp.OCREngine(),
			sp.UsageRepository(),
		)
	}
	return sp.extractServ
}

func (sp *ServiceProvider) GrapeHandler(ctx context.Context) *grapeAPI.Handler {
	if sp.grapeHand == nil {
		sp.grapeHand = grapeAPI.NewHandler(grapeAPI.HandlerDeps{
			GrapeServ:   sp.GrapeService(ctx),
			ExtractServ: sp.ExtractService(),
			UsageRepo:   sp.UsageRepository(),
		})
	}
	return sp.grapeHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Grape endpoints
		grapeHandler := sp.GrapeHandler(ctx)
		r.Route("/grape", func(rr chi.Router) {
			rr.Get("/catalog", grapeHandler.Catalog)
			rr.Get("/usage", grapeHandler.Usage)

			// Всё, что завязано на пользователя - под Auth middleware
			rr.Group(func(pr chi.Router) {
				pr.Use(middleware.Auth(sp.JWTCfg().AccessTokenSecretKey()))
				pr.Post("/analyze", grapeHandler.Analyze)
				pr.Post("/extract", grapeHandler.Extract)
				pr.Get("/session", grapeHandler.Session)
				pr.Get("/history", grapeHandler.History)
			})
		})

		sp.router = r
	}

	return sp.router
}
