// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и настройки уведомлений.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Каждому пользователю принадлежит ноль или более счетов; чтение и изменение
// счёта возможно только в контексте аутентифицированного владельца.
type User struct {
	ID             int64     `json:"id"`               // Уникальный идентификатор пользователя
	Email          string    `json:"email"`            // Электронная почта (уникальная)
	Name           string    `json:"name"`             // Имя пользователя
	PasswordHash   string    `json:"-"`                // Хэш пароля пользователя
	EmailNotify    bool      `json:"email_notify"`     // Напоминания по электронной почте
	TelegramNotify bool      `json:"telegram_notify"`  // Напоминания в Telegram
	TelegramChatID string    `json:"telegram_chat_id"` // Идентификатор чата Telegram
	CreatedAt      time.Time `json:"created_at"`       // Дата регистрации
	UpdatedAt      time.Time `json:"updated_at"`       // Дата последнего изменения
}

// DummyNotificationSettings используется для приёма настроек уведомлений
// из JSON-запроса.
type DummyNotificationSettings struct {
	EmailNotify    bool   `json:"email_notify"`
	TelegramNotify bool   `json:"telegram_notify"`
	TelegramChatID string `json:"telegram_chat_id"`
}
