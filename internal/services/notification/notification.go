// Package services содержит логику отправки тестовых уведомлений в Telegram.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

// ErrTelegramNotConfigured возвращается, когда у пользователя не указан
// chat id, указан некорректный или бот не инициализирован.
var ErrTelegramNotConfigured = errors.New("telegram is not configured")

// UserProvider описывает контракт получения профиля пользователя.
type UserProvider interface {
	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// TelegramAPI описывает часть API Telegram-бота, используемую сервисом.
type TelegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// NotificationService отправляет тестовые сообщения в Telegram,
// чтобы пользователь мог проверить указанный chat id.
type NotificationService struct {
	users UserProvider
	bot   TelegramAPI
	log   *slog.Logger
}

// NewNotificationService создает новый экземпляр NotificationService.
// bot может быть nil, если Telegram не сконфигурирован.
func NewNotificationService(users UserProvider, bot TelegramAPI, log *slog.Logger) *NotificationService {
	return &NotificationService{
		users: users,
		bot:   bot,
		log:   log,
	}
}

// SendTestTelegram отправляет тестовое сообщение в Telegram-чат пользователя.
func (s *NotificationService) SendTestTelegram(ctx context.Context, userID int64, message string) error {
	const op = "services.notification.SendTestTelegram"

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if s.bot == nil || user.TelegramChatID == "" {
		return ErrTelegramNotConfigured
	}

	chatID, err := strconv.ParseInt(user.TelegramChatID, 10, 64)
	if err != nil {
		s.log.Error("invalid telegram chat id",
			slog.Int64("user_id", userID),
			slog.String("chat_id", user.TelegramChatID))
		return ErrTelegramNotConfigured
	}

	if _, err := s.bot.Send(tgbotapi.NewMessage(chatID, message)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("test telegram message sent", slog.Int64("user_id", userID))
	return nil
}
