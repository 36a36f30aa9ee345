// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/bill-reminder/internal/lib/jwt"
	"github.com/magabrotheeeer/bill-reminder/internal/lib/password"
	"github.com/magabrotheeeer/bill-reminder/internal/models"
	"github.com/magabrotheeeer/bill-reminder/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
// Наружу не различается, существует ли пользователь.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken возвращается при попытке регистрации на занятый email.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	RegisterUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, userID int64) (*models.User, error)

	// UpdateNotificationSettings обновляет настройки уведомлений пользователя.
	UpdateNotificationSettings(ctx context.Context, userID int64,
		emailNotify, telegramNotify bool, telegramChatID string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и профиль пользователя.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и сразу выдаёт
// токен: успешная регистрация эквивалентна входу.
func (s *AuthService) Register(ctx context.Context, email, name, rawPassword string) (string, *models.User, error) {
	const op = "services.auth.Register"

	if existing, err := s.users.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return "", nil, ErrEmailTaken
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		// уведомления по почте включены по умолчанию
		EmailNotify: true,
	}
	id, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.users.GetUser(ctx, id)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.jwtMaker.GenerateToken(created.ID, created.Email)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, created, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// GetProfile возвращает профиль пользователя по ID.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetUser(ctx, userID)
}

// UpdateNotificationSettings обновляет настройки уведомлений пользователя
// и возвращает обновлённый профиль.
func (s *AuthService) UpdateNotificationSettings(ctx context.Context, userID int64,
	req models.DummyNotificationSettings) (*models.User, error) {
	return s.users.UpdateNotificationSettings(ctx, userID,
		req.EmailNotify, req.TelegramNotify, req.TelegramChatID)
}
