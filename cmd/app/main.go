package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"luggage/cmd"
	"luggage/internal/adapters/out/notify"
	"luggage/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	sender, closeSender := notificationSender(configs, logger)
	defer closeSender()

	app, err := cmd.NewCompositionRoot(configs, gormDB, sender, logger)
	if err != nil {
		log.Fatalf("Error wiring application: %v", err)
	}

	rateLimit, closeRateLimit, err := app.CreateAuthRateLimitStore(ctx)
	if err != nil {
		log.Fatalf("Error creating rate limiter: %v", err)
	}
	defer closeRateLimit()

	e, err := app.CreateRouter(rateLimit)
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	notifications := app.Notifications()
	notifications.Start(ctx)
	defer notifications.Stop()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, e, configs.HTTPPort, logger)
}

// notificationSender publishes to NATS when NATS_URL is set and only logs
// otherwise.
func notificationSender(configs cmd.Config, logger *slog.Logger) (ports.NotificationSender, func()) {
	if configs.NatsURL == "" {
		logger.Warn("NATS_URL is empty, notifications are logged only")
		return notify.NewLogSender(logger), func() {}
	}

	nc, err := notify.Connect(configs.NatsURL, logger)
	if err != nil {
		log.Fatalf("Error connecting to NATS: %v", err)
	}
	return notify.NewNatsSender(nc, configs.NatsSubject, logger), func() { _ = nc.Drain() }
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort:      envString("HTTP_PORT", "8080"),
		DBDriver:      envString("DB_DRIVER", cmd.DriverPostgres),
		DBHost:        envString("DB_HOST", "localhost"),
		DBPort:        envString("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        envString("DB_NAME", "luggage"),
		DBSslMode:     envString("DB_SSLMODE", "disable"),
		SQLitePath:    envString("SQLITE_PATH", "luggage.db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTL:        envDuration("JWT_TTL", 7*24*time.Hour),
		NatsURL:       os.Getenv("NATS_URL"),
		NatsSubject:   envString("NATS_SUBJECT", notify.DefaultSubject),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		AuthRateLimit: envInt("AUTH_RATE_LIMIT", 20),
		NotifyWorkers: envInt("NOTIFY_WORKERS", notify.DefaultWorkers),
		NotifyBuffer:  envInt("NOTIFY_BUFFER", notify.DefaultBufferSize),
	}
	return config
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Invalid %s=%q: %v", key, v, err)
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("Invalid %s=%q: %v", key, v, err)
	}
	return d
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown failed", "error", err)
		}
	}
}
