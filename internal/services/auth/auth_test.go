package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bill-reminder/internal/lib/jwt"
	"github.com/magabrotheeeer/bill-reminder/internal/lib/password"
	"github.com/magabrotheeeer/bill-reminder/internal/models"
	"github.com/magabrotheeeer/bill-reminder/internal/storage/repository"
)

// MockUserRepo реализует интерфейс UserRepository
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) RegisterUser(ctx context.Context, user models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) UpdateNotificationSettings(ctx context.Context, userID int64,
	emailNotify, telegramNotify bool, telegramChatID string) (*models.User, error) {
	args := m.Called(ctx, userID, emailNotify, telegramNotify, telegramChatID)
	if u := args.Get(0); u != nil {
		return u.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestAuthService(users *MockUserRepo) *AuthService {
	maker := jwt.NewJWTMaker("test_secret_key", 15*time.Minute)
	return NewAuthService(users, maker)
}

func TestRegister(t *testing.T) {
	users := new(MockUserRepo)
	service := newTestAuthService(users)

	users.On("GetUserByEmail", mock.Anything, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	users.On("RegisterUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
		// пароль хэшируется, почтовые уведомления включены по умолчанию
		return user.Email == "new@example.com" &&
			user.PasswordHash != "secret123" &&
			user.EmailNotify
	})).Return(int64(1), nil)
	users.On("GetUser", mock.Anything, int64(1)).
		Return(&models.User{ID: 1, Email: "new@example.com", Name: "Иван"}, nil)

	token, user, err := service.Register(context.Background(), "new@example.com", "Иван", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(1), user.ID)
	users.AssertExpectations(t)
}

func TestRegister_EmailTaken(t *testing.T) {
	users := new(MockUserRepo)
	service := newTestAuthService(users)

	users.On("GetUserByEmail", mock.Anything, "taken@example.com").
		Return(&models.User{ID: 2, Email: "taken@example.com"}, nil)

	_, _, err := service.Register(context.Background(), "taken@example.com", "Иван", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "RegisterUser")
}

func TestLogin(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	users := new(MockUserRepo)
	service := newTestAuthService(users)

	users.On("GetUserByEmail", mock.Anything, "user@example.com").
		Return(&models.User{ID: 1, Email: "user@example.com", PasswordHash: hash}, nil)

	token, user, err := service.Login(context.Background(), "user@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(1), user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	users := new(MockUserRepo)
	service := newTestAuthService(users)

	users.On("GetUserByEmail", mock.Anything, "user@example.com").
		Return(&models.User{ID: 1, Email: "user@example.com", PasswordHash: hash}, nil)

	_, _, err = service.Login(context.Background(), "user@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	users := new(MockUserRepo)
	service := newTestAuthService(users)

	users.On("GetUserByEmail", mock.Anything, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, _, err := service.Login(context.Background(), "ghost@example.com", "secret123")
	// наружу не различается, существует ли пользователь
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateNotificationSettings(t *testing.T) {
	users := new(MockUserRepo)
	service := newTestAuthService(users)

	users.On("UpdateNotificationSettings", mock.Anything, int64(1), false, true, "12345").
		Return(&models.User{ID: 1, TelegramNotify: true, TelegramChatID: "12345"}, nil)

	user, err := service.UpdateNotificationSettings(context.Background(), 1, models.DummyNotificationSettings{
		EmailNotify:    false,
		TelegramNotify: true,
		TelegramChatID: "12345",
	})
	require.NoError(t, err)
	assert.True(t, user.TelegramNotify)
	users.AssertExpectations(t)
}
