package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"collegeerp/internal/domain/assignments"
	"collegeerp/internal/domain/attendance"
	"collegeerp/internal/domain/auth"
	"collegeerp/internal/domain/calendar"
	"collegeerp/internal/domain/core"
	"collegeerp/internal/domain/fees"
	"collegeerp/internal/domain/leave"
	"collegeerp/internal/domain/marks"
	"collegeerp/internal/domain/reports"
	"collegeerp/internal/domain/timetable"
	"collegeerp/internal/platform/config"
	"collegeerp/internal/platform/db"
	"collegeerp/internal/platform/metrics"
	"collegeerp/internal/platform/storage"
	assignmentshandler "collegeerp/internal/transport/http/handlers/assignments"
	attendancehandler "collegeerp/internal/transport/http/handlers/attendance"
	authhandler "collegeerp/internal/transport/http/handlers/auth"
	calendarhandler "collegeerp/internal/transport/http/handlers/calendar"
	corehandler "collegeerp/internal/transport/http/handlers/core"
	feeshandler "collegeerp/internal/transport/http/handlers/fees"
	leavehandler "collegeerp/internal/transport/http/handlers/leave"
	markshandler "collegeerp/internal/transport/http/handlers/marks"
	reportshandler "collegeerp/internal/transport/http/handlers/reports"
	timetablehandler "collegeerp/internal/transport/http/handlers/timetable"
	"collegeerp/internal/transport/http/middleware"
)

type App struct {
	Config config.Config
	DB     *pgxpool.Pool
	Router http.Handler
}

// New builds the full application around an existing pool. Migrations and
// seeding are the caller's concern; Run handles them for the real server.
func New(cfg config.Config, pool *pgxpool.Pool) *App {
	coreStore := core.NewStore(pool)
	authStore := auth.NewStore(pool)

	attendanceSvc := attendance.NewService(attendance.NewStore(pool))
	marksSvc := marks.NewService(marks.NewStore(pool))
	assignmentsSvc := assignments.NewService(assignments.NewStore(pool))
	leaveSvc := leave.NewService(leave.NewStore(pool))
	calendarSvc := calendar.NewService(calendar.NewStore(pool))
	timetableSvc := timetable.NewService(timetable.NewStore(pool))
	feesSvc := fees.NewService(fees.NewStore(pool))
	reportsSvc := reports.NewService(coreStore, marksSvc, attendanceSvc)

	storageClient := storage.New(cfg.StorageURL, cfg.StorageServiceKey, cfg.StorageProofsBucket)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	if cfg.MetricsEnabled {
		m := metrics.New()
		router.Use(middleware.Metrics(m))
		router.Method(http.MethodGet, "/metrics", m.Handler())
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(authStore, cfg.JWTSecret, cfg.TokenTTL).RegisterRoutes(r)

		coreHandler := corehandler.NewHandler(coreStore, authStore)
		coreHandler.Attendance = attendanceSvc
		coreHandler.Timetable = timetableSvc
		coreHandler.Assignments = assignmentsSvc
		coreHandler.Leave = leaveSvc
		coreHandler.Fees = feesSvc
		coreHandler.RegisterRoutes(r)

		attendancehandler.NewHandler(attendanceSvc, coreStore, authStore).RegisterRoutes(r)
		markshandler.NewHandler(marksSvc, coreStore, authStore).RegisterRoutes(r)
		assignmentshandler.NewHandler(assignmentsSvc, coreStore, authStore).RegisterRoutes(r)
		leavehandler.NewHandler(leaveSvc, coreStore, storageClient, authStore, cfg.MaxProofBytes).RegisterRoutes(r)
		calendarhandler.NewHandler(calendarSvc, authStore).RegisterRoutes(r)
		timetablehandler.NewHandler(timetableSvc, coreStore, authStore).RegisterRoutes(r)
		feeshandler.NewHandler(feesSvc, coreStore, authStore).RegisterRoutes(r)
		reportshandler.NewHandler(reportsSvc, coreStore, authStore).RegisterRoutes(r)
	})

	return &App{Config: cfg, DB: pool, Router: router}
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	app := New(cfg, pool)

	log.Printf("college ERP server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
