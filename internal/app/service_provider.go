package app

import (
	"net/http"
	slotAPI "slot_machine/internal/api/slot"
	"slot_machine/internal/config"
	"slot_machine/internal/config/env"
	"slot_machine/internal/engine"
	appMiddleware "slot_machine/internal/middleware"
	"slot_machine/internal/model"
	"slot_machine/internal/repository"
	"slot_machine/internal/repository/stats_repo"
	"slot_machine/internal/service"
	"slot_machine/internal/service/slot"
	"slot_machine/pkg/logger"
	"slot_machine/pkg/realtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	gameConfigPath = "config.yaml"
	requestTimeout = 15 * time.Second
)

type ServiceProvider struct {
	// Logging
	logCfg config.LogConfig
	logger *zap.Logger

	// Engine bits
	gameCfg config.GameConfig
	sched   *engine.Scheduler
	grid    *engine.Grid
	loop    *engine.Loop

	// Round bits
	ledgerCfg config.LedgerConfig
	ledger    *slot.Ledger
	events    *realtime.Broadcaster[model.Event]
	statsRepo repository.StatsRepository
	round     *slot.Round
	slotServ  service.SlotService
	slotHand  *slotAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
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
		cfg := sp.LogCfg()
		sp.logger = logger.New(&logger.Config{
			Mode:  logger.ParseMode(cfg.Mode()),
			Level: cfg.Level(),
			App:   cfg.App(),
			Dir:   cfg.Dir(),
			File:  cfg.File(),
		})
	}
	return sp.logger
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(gameConfigPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) LedgerCfg() config.LedgerConfig {
	if sp.ledgerCfg == nil {
		cfg, err := env.NewLedgerConfigFromYAML(gameConfigPath)
		if err != nil {
			panic("failed to get ledger config: " + err.Error())
		}
		sp.ledgerCfg = cfg
	}
	return sp.ledgerCfg
}

func (sp *ServiceProvider) Scheduler() *engine.Scheduler {
	if sp.sched == nil {
		sp.sched = engine.NewScheduler()
	}
	return sp.sched
}

// Grid Поле барабанов. Seed 0 означает случайное зерно.
func (sp *ServiceProvider) Grid() *engine.Grid {
	if sp.grid == nil {
		cfg := sp.GameCfg()
		seed := cfg.Seed()
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g, err := engine.NewGrid(engine.GridOptions{
			Reels:   cfg.Reels(),
			Visible: cfg.VisibleRows(),
			Buffer:  cfg.BufferSlots(),
			Stagger: cfg.Stagger(),
			Reel: engine.ReelOptions{
				MinDuration:   cfg.MinSpinDuration(),
				MaxDuration:   cfg.MaxSpinDuration(),
				Laps:          cfg.ScrollLaps(),
				LateThreshold: cfg.LateThreshold(),
				SlotHeight:    cfg.SlotHeight(),
			},
		}, sp.Scheduler(), engine.NewRandom(seed))
		if err != nil {
			panic("failed to create grid: " + err.Error())
		}
		sp.grid = g
	}
	return sp.grid
}

func (sp *ServiceProvider) Events() *realtime.Broadcaster[model.Event] {
	if sp.events == nil {
		sp.events = realtime.NewBroadcaster[model.Event]()
	}
	return sp.events
}

// Loop Цикл тиков: сначала таймеры, затем барабаны. Барабан, запущенный
// таймером, продвигается уже на dt того же тика, поэтому i-й барабан
// останавливается через i*Stagger + duration от первого тика спина.
func (sp *ServiceProvider) Loop() *engine.Loop {
	if sp.loop == nil {
		l := engine.NewLoop(sp.GameCfg().TickInterval(), sp.Logger().Named("engine"), sp.Scheduler(), sp.Grid())
		l.OnStop(sp.Scheduler().Destroy)
		l.OnStop(sp.Events().Close)
		sp.loop = l
	}
	return sp.loop
}

func (sp *ServiceProvider) Ledger() *slot.Ledger {
	if sp.ledger == nil {
		cfg := sp.LedgerCfg()
		l, err := slot.NewLedger(cfg.InitialBalance(), cfg.BetSteps())
		if err != nil {
			panic("failed to create ledger: " + err.Error())
		}
		sp.ledger = l
	}
	return sp.ledger
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.LedgerCfg().StatsWindow())
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) Round() *slot.Round {
	if sp.round == nil {
		sp.round = slot.NewRound(
			sp.Ledger(),
			sp.Grid(),
			sp.Events(),
			sp.StatsRepository(),
			sp.Logger().Named("round"),
		)
	}
	return sp.round
}

func (sp *ServiceProvider) SlotService() service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(sp.Loop(), sp.Round(), sp.Grid(), sp.StatsRepository(), sp.Events())
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler() *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv:   sp.SlotService(),
			Logger: sp.Logger().Named("http"),
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

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(appMiddleware.RequestLogger(sp.Logger().Named("access")))
		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		r.Handle("/metrics", promhttp.Handler())

		mountSlotRoutes(r, sp.SlotHandler())

		sp.router = r
	}

	return sp.router
}

// Стрим живёт дольше таймаута запроса, поэтому он вне группы с Timeout
func mountSlotRoutes(r chi.Router, h *slotAPI.Handler) {
	r.Route("/slot", func(rr chi.Router) {
		rr.Get("/stream", h.Stream)
		rr.Group(func(g chi.Router) {
			g.Use(middleware.Timeout(requestTimeout))
			g.Post("/spin", h.Spin)
			g.Post("/bet", h.Bet)
			g.Get("/state", h.State)
			g.Get("/result", h.LastResult)
			g.Get("/reels", h.Reels)
			g.Get("/symbols", h.Symbols)
			g.Post("/layout", h.Layout)
			g.Get("/stats", h.Stats)
			g.Post("/stats/reset", h.ResetStats)
		})
	})
}
