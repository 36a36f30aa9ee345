package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBot struct {
	mock.Mock
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	args := m.Called(c)
	return args.Get(0).(tgbotapi.Message), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSendTestTelegram(t *testing.T) {
	users := new(MockUsers)
	bot := new(MockBot)

	users.On("GetUser", mock.Anything, int64(7)).
		Return(&models.User{ID: 7, TelegramNotify: true, TelegramChatID: "12345"}, nil)
	bot.On("Send", mock.MatchedBy(func(c tgbotapi.Chattable) bool {
		msg, ok := c.(tgbotapi.MessageConfig)
		return ok && msg.ChatID == 12345 && msg.Text == "проверка связи"
	})).Return(tgbotapi.Message{}, nil)

	service := NewNotificationService(users, bot, testLogger())

	err := service.SendTestTelegram(context.Background(), 7, "проверка связи")
	require.NoError(t, err)
	bot.AssertExpectations(t)
}

func TestSendTestTelegram_NoChatID(t *testing.T) {
	users := new(MockUsers)
	bot := new(MockBot)

	users.On("GetUser", mock.Anything, int64(7)).
		Return(&models.User{ID: 7}, nil)

	service := NewNotificationService(users, bot, testLogger())

	err := service.SendTestTelegram(context.Background(), 7, "проверка связи")
	assert.ErrorIs(t, err, ErrTelegramNotConfigured)
	bot.AssertNotCalled(t, "Send")
}

func TestSendTestTelegram_BotNotConfigured(t *testing.T) {
	users := new(MockUsers)

	users.On("GetUser", mock.Anything, int64(7)).
		Return(&models.User{ID: 7, TelegramChatID: "12345"}, nil)

	service := NewNotificationService(users, nil, testLogger())

	err := service.SendTestTelegram(context.Background(), 7, "проверка связи")
	assert.ErrorIs(t, err, ErrTelegramNotConfigured)
}

func TestSendTestTelegram_InvalidChatID(t *testing.T) {
	users := new(MockUsers)
	bot := new(MockBot)

	users.On("GetUser", mock.Anything, int64(7)).
		Return(&models.User{ID: 7, TelegramChatID: "not-a-number"}, nil)

	service := NewNotificationService(users, bot, testLogger())

	err := service.SendTestTelegram(context.Background(), 7, "проверка связи")
	assert.ErrorIs(t, err, ErrTelegramNotConfigured)
	bot.AssertNotCalled(t, "Send")
}

func TestSendTestTelegram_UserLookupFails(t *testing.T) {
	users := new(MockUsers)

	users.On("GetUser", mock.Anything, int64(7)).
		Return(nil, errors.New("db error"))

	service := NewNotificationService(users, nil, testLogger())

	err := service.SendTestTelegram(context.Background(), 7, "проверка связи")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTelegramNotConfigured)
}
