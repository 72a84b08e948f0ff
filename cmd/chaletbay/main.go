package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"chaletbay/internal/app/messages"
	authsvc "chaletbay/internal/app/services/auth"
	bookingsvc "chaletbay/internal/app/services/booking"
	calendarsvc "chaletbay/internal/app/services/calendar"
	reportsvc "chaletbay/internal/app/services/report"
	domainbooking "chaletbay/internal/domain/booking"
	"chaletbay/internal/infra/broker/kafka"
	"chaletbay/internal/infra/config"
	"chaletbay/internal/infra/db/mongo"
	ginserver "chaletbay/internal/infra/http/gin"
	"chaletbay/internal/infra/obs"
	"chaletbay/internal/infra/security"
	"chaletbay/internal/infra/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	env := getenv("APP_ENV", "dev")
	logger := obs.NewLogger(env)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	app, cleanup, err := buildApplication(cfg, logger)
	if err != nil {
		logger.Error("application bootstrap failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: app.ready,
	}, app.handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "storage", cfg.StorageMode)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}

type application struct {
	handlers ginserver.Handlers
	ready    func() error
}

func buildApplication(cfg config.Config, logger *slog.Logger) (application, func(), error) {
	cleanups := make([]func(), 0, 2)
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	var (
		bookings domainbooking.Repository
		ready    = func() error { return nil }
	)
	switch cfg.StorageMode {
	case "mongo":
		client, err := mongo.New(cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return application{}, cleanup, err
		}
		cleanups = append(cleanups, func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Close(closeCtx); err != nil {
				logger.Warn("mongo disconnect failed", "error", err)
			}
		})
		bookings = mongo.NewBookingRepository(client.DB)
		ready = func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(pingCtx)
		}
	default:
		bookings = memory.NewBookingRepository()
	}

	var publisher bookingsvc.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
		if err != nil {
			return application{}, cleanup, err
		}
		cleanups = append(cleanups, func() {
			if err := producer.Close(); err != nil {
				logger.Warn("kafka close failed", "error", err)
			}
		})
		publisher = &kafka.EventPublisher{Producer: producer, TopicPrefix: cfg.KafkaTopicPrefix}
		logger.Info("kafka publisher enabled", "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("kafka publisher disabled")
	}

	bookingService := &bookingsvc.Service{
		Bookings:  bookings,
		Publisher: publisher,
		Logger:    logger,
	}
	handlers := ginserver.Handlers{
		Booking:  ginserver.BookingHandler{Service: bookingService},
		Calendar: ginserver.CalendarHandler{Service: &calendarsvc.Service{Bookings: bookings}},
		Report:   ginserver.ReportHandler{Service: &reportsvc.Service{Bookings: bookings}},
		Message: ginserver.MessageHandler{
			Service: bookingService,
			Builder: messages.Builder{PropertyName: cfg.PropertyName},
		},
	}
	if cfg.AdminPasswordHash != "" {
		authService := &authsvc.Service{
			AdminUser:  cfg.AdminUser,
			AdminHash:  cfg.AdminPasswordHash,
			Sessions:   memory.NewSessionStore(),
			Passwords:  security.BcryptHasher{},
			Tokens:     security.RandomTokenGenerator{},
			SessionTTL: cfg.SessionTTL,
			Logger:     logger,
		}
		handlers.Auth = ginserver.AuthHandler{Service: authService, Logger: logger}
		handlers.AuthMiddleware = ginserver.AuthMiddleware{Service: authService}.Handle
	} else {
		logger.Info("admin auth disabled: ADMIN_PASSWORD_HASH not set")
	}

	return application{handlers: handlers, ready: ready}, cleanup, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
