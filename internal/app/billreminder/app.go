// Package billreminder собирает основное HTTP-приложение: хранилище, кеш,
// сервисы и маршруты.
package billreminder

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/magabrotheeeer/bill-reminder/internal/cache"
	"github.com/magabrotheeeer/bill-reminder/internal/config"
	"github.com/magabrotheeeer/bill-reminder/internal/lib/jwt"
	"github.com/magabrotheeeer/bill-reminder/internal/migrations"
	authservice "github.com/magabrotheeeer/bill-reminder/internal/services/auth"
	billservice "github.com/magabrotheeeer/bill-reminder/internal/services/bill"
	notificationservice "github.com/magabrotheeeer/bill-reminder/internal/services/notification"
	"github.com/magabrotheeeer/bill-reminder/internal/storage/repository"
)

// App — основное приложение сервиса напоминаний о счетах.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New создает приложение: подключает PostgreSQL и Redis, применяет миграции,
// собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewAuthService(db, jwtMaker)
	billService := billservice.NewBillService(db, cacheRedis, logger)

	var bot notificationservice.TelegramAPI
	if cfg.TelegramToken != "" {
		tgBot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
		if err != nil {
			logger.Error("failed to init telegram bot, continuing without it", slog.Any("err", err))
		} else {
			bot = tgBot
		}
	}
	notificationService := notificationservice.NewNotificationService(db, bot, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, authService, billService, notificationService, db)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", slog.Any("err", closeErr))
		}
		return err
	}
}
