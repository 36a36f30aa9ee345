package models

import "time"

// ReminderInfo — сообщение о счёте, требующем внимания пользователя.
// Публикуется планировщиком в RabbitMQ и потребляется сервисом отправки
// уведомлений; содержит всё необходимое для письма или сообщения в Telegram.
type ReminderInfo struct {
	Email          string    `json:"email"`
	UserName       string    `json:"user_name"`
	BillName       string    `json:"bill_name"`
	Amount         int64     `json:"amount"`
	DueDate        time.Time `json:"due_date"`
	EmailNotify    bool      `json:"email_notify"`
	TelegramNotify bool      `json:"telegram_notify"`
	TelegramChatID string    `json:"telegram_chat_id"`
}
