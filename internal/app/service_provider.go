package app

import (
	"context"
	authAPI "slot_backend/internal/api/auth"
	slotAPI "slot_backend/internal/api/slot"
	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/middleware"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/auth_repo"
	"slot_backend/internal/repository/game_session_repo"
	"slot_backend/internal/repository/stats_repo"
	"slot_backend/internal/repository/user_repo"
	"slot_backend/internal/service"
	"slot_backend/internal/service/auth"
	slotServ "slot_backend/internal/service/slot"
	"slot_backend/internal/slot"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Logger
	logCfg config.LogConfig
	logger *zap.Logger

	//TXManager
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

	// Slot bits
	slotCfg      *slot.Config
	gameSessions repository.GameSessionRepository
	statsRepo    repository.StatsRepository
	slotServ     service.SlotService
	slotHand     *slotAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogConfig() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(sp.LogConfig().Level())

		l, err := cfg.Build()
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
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

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
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
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.GameSessions(),
			sp.JWTConfig(),
			sp.Logger(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:       sp.AuthService(ctx),
			Log:        sp.Logger(),
			RefreshTTL: sp.JWTConfig().RefreshTokenDuration(),
		})
	}
	return sp.authHand
}

// SlotCfg - конфигурация автомата. Ошибки валидации фатальны
func (sp *ServiceProvider) SlotCfg() slot.Config {
	if sp.slotCfg == nil {
		doc, err := env.NewSlotConfigFromEnv()
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}

		cfg := slot.FromConfig(doc)
		if err := cfg.Validate(); err != nil {
			panic("invalid slot config: " + err.Error())
		}
		sp.slotCfg = &cfg
	}
	return *sp.slotCfg
}

func (sp *ServiceProvider) GameSessions() repository.GameSessionRepository {
	if sp.gameSessions == nil {
		sp.gameSessions = game_session_repo.NewGameSessionRepository()
	}
	return sp.gameSessions
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(0)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) SlotService() service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slotServ.NewSlotService(sp.SlotCfg(), sp.GameSessions(), sp.StatsRepository(), sp.Logger())
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler() *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: sp.SlotService(),
			Log:  sp.Logger(),
		})
	}
	return sp.slotHand
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

		r.Use(chimw.RequestID)
		r.Use(middleware.Logger(sp.Logger().Named("http")))
		r.Use(chimw.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		authMw := middleware.Auth(sp.JWTConfig().AccessTokenSecretKey(), sp.Logger())

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.With(authMw).Post("/logout", authHandler.Logout)
		})

		// Slot endpoints. Конфигурация и статистика публичные
		slotHandler := sp.SlotHandler()
		r.Route("/slot", func(rr chi.Router) {
			rr.Get("/config", slotHandler.Config)
			rr.Get("/stats", slotHandler.Stats)

			rr.Group(func(pr chi.Router) {
				pr.Use(authMw)
				pr.Post("/spin", slotHandler.Spin)
				pr.Post("/bet", slotHandler.SetBet)
				pr.Post("/free-spins", slotHandler.ActivateFreeSpins)
				pr.Get("/state", slotHandler.State)
			})
		})

		sp.router = r
	}
	return sp.router
}

// Close освобождает пул соединений и сбрасывает буфер логгера
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.logger != nil {
		_ = sp.logger.Sync()
	}
}
