// Package services содержит логику планировщика напоминаний о счетах.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/bill-reminder/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/bill-reminder/internal/lib/sl"
	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

// BillRepository определяет выборки счетов, требующих уведомления.
type BillRepository interface {
	FindBillsDueForReminder(ctx context.Context) ([]*models.ReminderInfo, error)
	FindOverdueBills(ctx context.Context) ([]*models.ReminderInfo, error)
}

// SchedulerService периодически находит счета в окне напоминания и просроченные
// счета и публикует события в RabbitMQ. Сохранённый статус счёта планировщик
// никогда не меняет: просроченность выводится классификатором при чтении.
type SchedulerService struct {
	repo BillRepository
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo BillRepository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
	}
}

// FindUpcomingBills раз в 12 часов публикует напоминания о счетах,
// попавших в своё окно напоминания.
func (s *SchedulerService) FindUpcomingBills(ctx context.Context, channel *amqp.Channel) {
	s.runFindUpcomingBills(ctx, channel)

	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runFindUpcomingBills(ctx, channel)
		case <-ctx.Done():
			return
		}
	}
}

func (s *SchedulerService) runFindUpcomingBills(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting service to find bills due for reminder")
	reminders, err := s.repo.FindBillsDueForReminder(ctx)
	if err != nil {
		s.log.Error("failed to find bills", sl.Err(err))
		return
	}
	if len(reminders) == 0 {
		s.log.Info("no upcoming bills found")
		return
	}
	s.log.Info("found upcoming bills", "count", len(reminders))
	for _, reminder := range reminders {
		err = rabbitmq.PublishMessage(channel, "notifications", "upcoming", reminder)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}

// FindOverdueBills раз в сутки публикует уведомления о просроченных счетах.
func (s *SchedulerService) FindOverdueBills(ctx context.Context, channel *amqp.Channel) {
	s.runFindOverdueBills(ctx, channel)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runFindOverdueBills(ctx, channel)
		case <-ctx.Done():
			return
		}
	}
}

func (s *SchedulerService) runFindOverdueBills(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting service to find overdue bills")
	reminders, err := s.repo.FindOverdueBills(ctx)
	if err != nil {
		s.log.Error("failed to find bills", sl.Err(err))
		return
	}
	if len(reminders) == 0 {
		s.log.Info("no overdue bills found")
		return
	}
	s.log.Info("found overdue bills", "count", len(reminders))
	for _, reminder := range reminders {
		err = rabbitmq.PublishMessage(channel, "notifications", "overdue", reminder)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}
