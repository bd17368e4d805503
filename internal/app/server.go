package app

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"betsim-platform/internal/audit"
	"betsim-platform/internal/betting"
	"betsim-platform/internal/config"
	"betsim-platform/internal/event"
	"betsim-platform/internal/fixtures"
	"betsim-platform/internal/jobs"
	"betsim-platform/internal/leaderboard"
	"betsim-platform/internal/logger"
	"betsim-platform/internal/monitoring"
	"betsim-platform/internal/session"
	"betsim-platform/internal/settlement"
	"betsim-platform/internal/standings"
	"betsim-platform/internal/store"
	"betsim-platform/internal/users"
)

type Server struct {
	app   *fiber.App
	jobs  *jobs.Manager
	store *store.SQLite
	cfg   *config.Config
	log   *zap.Logger
}

func NewServer() (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New("betsim-platform", cfg.Env)
	if err != nil {
		return nil, err
	}

	monitoring.Init()

	st, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	var sessions session.Store
	if cfg.RedisAddr != "" {
		sessions, err = session.NewRedis(cfg.RedisAddr, cfg.SessionTTL)
		if err != nil {
			return nil, err
		}
	} else {
		sessions = session.NewMemory()
	}

	bus := event.NewBus()
	audit.RegisterConsumers(bus, audit.New(st.DB(), log))

	generator := fixtures.NewGenerator(fixtures.DefaultTeams())
	fixtureService := fixtures.NewService(st, generator, bus, log)
	betService := betting.NewService(st, bus, log)
	settlementEngine := settlement.New(st, bus, log)
	standingsService := standings.NewService(st, log)
	leaderboardService := leaderboard.NewService(st)
	userService := users.NewService(st, sessions, bus, log, cfg.StartingBalance)

	manager := jobs.New(log)
	manager.Register("settlement", cfg.SettlementInterval, settlementEngine.Sweep)
	manager.Register("standings", cfg.StandingsInterval, standingsService.Refresh)
	manager.Register("regenerate", cfg.RegenerateInterval, fixtureService.Regenerate)

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	users.RegisterRoutes(app, userService)

	guard := session.Guard(sessions)
	api := app.Group("/api")
	users.RegisterAPIRoutes(api, guard, userService)
	fixtures.RegisterRoutes(api, fixtureService)
	betting.RegisterRoutes(api, guard, betService)
	standings.RegisterRoutes(api, standingsService)
	leaderboard.RegisterRoutes(api, leaderboardService)

	return &Server{
		app:   app,
		jobs:  manager,
		store: st,
		cfg:   cfg,
		log:   log,
	}, nil
}

func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	monitoring.StartServer(s.cfg.MetricsPort, func(ctx context.Context) error {
		return s.store.DB().PingContext(ctx)
	})

	// Seed the pool and table before the first scheduled ticks.
	if err := s.jobs.RunOnce(ctx, "regenerate"); err != nil {
		return err
	}
	if err := s.jobs.RunOnce(ctx, "standings"); err != nil {
		return err
	}

	go s.jobs.Start(ctx)

	s.log.Info("server listening", zap.String("port", s.cfg.HTTPPort))
	return s.app.Listen(":" + s.cfg.HTTPPort)
}
