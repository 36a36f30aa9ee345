// Package models содержит доменные структуры, описывающие счёт к оплате,
// а также вспомогательные типы для приёма данных из внешних источников (например, JSON-запросов).
package models

import "time"

// Status — сохранённый статус счёта. Это последнее значение, которое явно
// выставил пользователь (например, «отметить оплаченным»); автоматически оно
// не понижается. Эффективный статус вычисляется заново при каждом чтении.
type Status string

const (
	// StatusUnpaid — счёт не оплачен.
	StatusUnpaid Status = "unpaid"
	// StatusPaid — счёт оплачен.
	StatusPaid Status = "paid"
	// StatusOverdue — счёт просрочен.
	StatusOverdue Status = "overdue"
)

// DueDateLayout — формат даты оплаты в JSON-запросах.
const DueDateLayout = "2006-01-02"

// Bill представляет собой основную модель счёта,
// используемую в бизнес-логике и хранилище.
// Amount хранится в минорных единицах валюты (копейки/центы),
// DueDate — календарная дата без компонента времени.
type Bill struct {
	ID           int64     `json:"id"`            // Уникальный идентификатор счёта
	UserID       int64     `json:"user_id"`       // Идентификатор владельца
	Name         string    `json:"name"`          // Название счёта
	Amount       int64     `json:"amount"`        // Сумма в минорных единицах
	DueDate      time.Time `json:"due_date"`      // Дата оплаты (только дата)
	Description  string    `json:"description"`   // Описание (опционально)
	Status       Status    `json:"status"`        // Сохранённый статус
	RemindBefore int       `json:"remind_before"` // За сколько дней напоминать
	CreatedAt    time.Time `json:"created_at"`    // Дата создания записи
	UpdatedAt    time.Time `json:"updated_at"`    // Дата последнего изменения
}

// DummyBill используется для приёма данных из JSON-запроса на создание счёта,
// прежде чем конвертировать их в Bill.
// Сумма приходит десятичной строкой, дата — строкой в формате 2006-01-02,
// чтобы их можно было валидировать и парсить вручную.
// RemindBefore при отсутствии принимает значение по умолчанию (3 дня).
type DummyBill struct {
	Name         string `json:"name" validate:"required"`                        // Название счёта
	Amount       string `json:"amount" validate:"required,amount"`               // Сумма десятичной строкой (>= 0)
	DueDate      string `json:"due_date" validate:"required,datetime=2006-01-02"` // Дата оплаты
	Description  string `json:"description,omitempty"`                           // Описание (опционально)
	RemindBefore *int   `json:"remind_before,omitempty" validate:"omitempty,gte=0"` // Окно напоминания в днях
}

// DummyUpdateBill используется для приёма данных из JSON-запроса на частичное
// обновление счёта. Каждое поле опционально: nil означает «не менять»,
// пропущенные поля никогда не затираются.
type DummyUpdateBill struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Amount       *string `json:"amount,omitempty" validate:"omitempty,amount"`
	DueDate      *string `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description  *string `json:"description,omitempty"`
	Status       *Status `json:"status,omitempty" validate:"omitempty,oneof=unpaid paid overdue"`
	RemindBefore *int    `json:"remind_before,omitempty" validate:"omitempty,gte=0"`
}
