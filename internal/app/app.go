package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/JamilPr1/whatsapp-booking-system/internal/config"
	"github.com/JamilPr1/whatsapp-booking-system/internal/geo"
	"github.com/JamilPr1/whatsapp-booking-system/internal/handler"
	"github.com/JamilPr1/whatsapp-booking-system/internal/middleware"
	"github.com/JamilPr1/whatsapp-booking-system/internal/notification"
	"github.com/JamilPr1/whatsapp-booking-system/internal/payments"
	"github.com/JamilPr1/whatsapp-booking-system/internal/repository"
	"github.com/JamilPr1/whatsapp-booking-system/internal/router"
	"github.com/JamilPr1/whatsapp-booking-system/internal/scheduler"
	"github.com/JamilPr1/whatsapp-booking-system/internal/service"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	catalog    *service.CatalogService
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BookingSystem",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	loc, err := time.LoadLocation(a.cfg.Booking.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", a.cfg.Booking.Timezone, err)
	}

	bookingRepo := repository.NewBookingRepo(a.db)
	scheduleRepo := repository.NewScheduleRepo(a.db)
	serviceRepo := repository.NewServiceRepo(a.db)
	userRepo := repository.NewUserRepo(a.db)

	notifier, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	if a.cfg.Redis.Addr != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
		})
	}

	geocoder := geo.NewGeocoder(
		a.cfg.Geocoder.Endpoint,
		a.cfg.Geocoder.APIKey,
		a.redis,
		a.cfg.Redis.GeocodeTTL,
		a.log,
	)

	paymentProvider := payments.NewStripeProvider(a.cfg.Stripe.APIKey, a.cfg.Stripe.Currency)

	availabilityService := service.NewAvailabilityService(
		scheduleRepo,
		bookingRepo,
		a.cfg.Booking.WindowDays,
		loc,
	)
	bookingService := service.NewBookingService(
		bookingRepo,
		scheduleRepo,
		serviceRepo,
		userRepo,
		availabilityService,
		geocoder,
		paymentProvider,
		notifier,
		a.log,
		loc,
		a.cfg.Booking.CancelWindow,
	)
	scheduleService := service.NewScheduleService(
		scheduleRepo,
		bookingRepo,
		userRepo,
		notifier,
		a.log,
		loc,
	)
	a.catalog = service.NewCatalogService(serviceRepo)
	userService := service.NewUserService(userRepo)

	a.scheduler = scheduler.New(
		scheduleService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		bookingService,
		availabilityService,
		scheduleService,
		a.catalog,
		userService,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Metrics(),
		middleware.Identity(),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.cfg.Seed.Enabled {
		if err := a.catalog.Seed(ctx); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
