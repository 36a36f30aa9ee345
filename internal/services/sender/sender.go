// Package services содержит логику отправки уведомлений о счетах
// по электронной почте и в Telegram.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/magabrotheeeer/bill-reminder/internal/lib/money"
	"github.com/magabrotheeeer/bill-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/bill-reminder/internal/lib/smtp"
	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

// TelegramAPI описывает отправку сообщений в Telegram.
type TelegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// SenderService доставляет напоминания о счетах по каналам,
// включённым в настройках пользователя.
type SenderService struct {
	transport smtp.TransportInterface
	bot       TelegramAPI
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
// bot может быть nil, если Telegram не сконфигурирован, — тогда сообщения
// в Telegram не отправляются.
func NewSenderService(transport smtp.TransportInterface, bot TelegramAPI, log *slog.Logger) *SenderService {
	return &SenderService{
		transport: transport,
		bot:       bot,
		log:       log,
	}
}

// SendUpcomingReminder обрабатывает событие о счёте в окне напоминания.
func (s *SenderService) SendUpcomingReminder(body []byte) error {
	var message models.ReminderInfo
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	subject := "Напоминание о предстоящей оплате счёта"
	text := fmt.Sprintf("Здравствуйте, %s!\n\nСчёт «%s» на сумму %s нужно оплатить до %s.\n\nНе забудьте про оплату.",
		message.UserName, message.BillName, money.Format(message.Amount),
		message.DueDate.Format(models.DueDateLayout))

	return s.deliver(message, subject, text)
}

// SendOverdueNotice обрабатывает событие о просроченном счёте.
func (s *SenderService) SendOverdueNotice(body []byte) error {
	var message models.ReminderInfo
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	subject := "Счёт просрочен"
	text := fmt.Sprintf("Здравствуйте, %s!\n\nСрок оплаты счёта «%s» на сумму %s истёк %s.\n\nОплатите его как можно скорее.",
		message.UserName, message.BillName, money.Format(message.Amount),
		message.DueDate.Format(models.DueDateLayout))

	return s.deliver(message, subject, text)
}

// deliver отправляет текст по всем включённым у пользователя каналам.
func (s *SenderService) deliver(message models.ReminderInfo, subject, text string) error {
	if message.EmailNotify {
		if err := s.sendEmail([]string{message.Email}, subject, text); err != nil {
			return err
		}
	}
	if message.TelegramNotify && message.TelegramChatID != "" {
		if err := s.sendTelegram(message.TelegramChatID, text); err != nil {
			return err
		}
	}
	return nil
}

func (s *SenderService) sendTelegram(chatID, text string) error {
	if s.bot == nil {
		s.log.Warn("telegram is not configured, skipping message")
		return nil
	}
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		s.log.Error("invalid telegram chat id", slog.String("chat_id", chatID), sl.Err(err))
		return nil
	}
	if _, err := s.bot.Send(tgbotapi.NewMessage(id, text)); err != nil {
		s.log.Error("failed to send telegram message", sl.Err(err))
		return err
	}
	return nil
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", sl.Err(err))
		return err
	}
	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}
	if _, err := wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write message body", sl.Err(err))
		return err
	}
	if err := wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}
	return client.Quit()
}
