// Package services содержит бизнес-логику для управления счетами и кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/bill-reminder/internal/lib/billing"
	"github.com/magabrotheeeer/bill-reminder/internal/lib/money"
	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

// defaultRemindBefore — окно напоминания по умолчанию, если клиент его не указал.
const defaultRemindBefore = 3

// BillRepository определяет методы для работы со счетами в хранилище.
// Все операции чтения и изменения ограничены счетами одного пользователя.
type BillRepository interface {
	// CreateBill добавляет новый счёт и возвращает его ID.
	CreateBill(ctx context.Context, bill models.Bill) (int64, error)
	// ReadBill возвращает счёт по ID.
	ReadBill(ctx context.Context, id, userID int64) (*models.Bill, error)
	// ListBills возвращает все счета пользователя.
	ListBills(ctx context.Context, userID int64) ([]*models.Bill, error)
	// UpdateBill перезаписывает изменяемые поля счёта.
	UpdateBill(ctx context.Context, bill models.Bill) (int64, error)
	// RemoveBill удаляет счёт по ID и возвращает количество удалённых записей.
	RemoveBill(ctx context.Context, id, userID int64) (int64, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// BillService реализует бизнес-логику работы со счетами, включая кеширование
// одиночных чтений. Сводка дашборда не кешируется: она пересчитывается при
// каждом запросе из снимка счетов и текущей даты.
type BillService struct {
	repo  BillRepository
	cache Cache
	log   *slog.Logger
}

// NewBillService создает новый экземпляр BillService.
func NewBillService(repo BillRepository, cache Cache, log *slog.Logger) *BillService {
	return &BillService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новый счёт для пользователя и возвращает его ID.
// RemindBefore при отсутствии принимает значение по умолчанию,
// статус нового счёта всегда unpaid.
func (s *BillService) Create(ctx context.Context, userID int64, req models.DummyBill) (int64, error) {
	dueDate, err := time.Parse(models.DueDateLayout, req.DueDate)
	if err != nil {
		return 0, fmt.Errorf("invalid due date: %w", err)
	}
	amount, err := money.Parse(req.Amount)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %w", err)
	}
	remindBefore := defaultRemindBefore
	if req.RemindBefore != nil {
		remindBefore = *req.RemindBefore
	}

	bill := models.Bill{
		UserID:       userID,
		Name:         req.Name,
		Amount:       amount,
		DueDate:      dueDate,
		Description:  req.Description,
		Status:       models.StatusUnpaid,
		RemindBefore: remindBefore,
	}

	id, err := s.repo.CreateBill(ctx, bill)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new bill", slog.Int64("id", id))

	s.invalidate(userID, id)
	return id, nil
}

// Read возвращает счёт по ID, используя кеш или репозиторий.
// Сохранённый статус заменяется эффективным.
func (s *BillService) Read(ctx context.Context, id, userID int64) (*models.Bill, error) {
	var result *models.Bill
	cacheKey := s.cacheKey(userID, id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
		found = false
	}
	if !found {
		result, err = s.repo.ReadBill(ctx, id, userID)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to cache bill", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}

	result.Status = billing.EffectiveStatus(result.Status, result.DueDate, time.Now())
	return result, nil
}

// List возвращает все счета пользователя с эффективными статусами.
func (s *BillService) List(ctx context.Context, userID int64) ([]*models.Bill, error) {
	bills, err := s.repo.ListBills(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := time.Now()
	for _, bill := range bills {
		bill.Status = billing.EffectiveStatus(bill.Status, bill.DueDate, today)
	}
	return bills, nil
}

// Update частично обновляет счёт: nil-поля запроса не меняются.
// Возвращает обновлённый счёт.
func (s *BillService) Update(ctx context.Context, id, userID int64, req models.DummyUpdateBill) (*models.Bill, error) {
	bill, err := s.repo.ReadBill(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		bill.Name = *req.Name
	}
	if req.Amount != nil {
		amount, err := money.Parse(*req.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount: %w", err)
		}
		bill.Amount = amount
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(models.DueDateLayout, *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due date: %w", err)
		}
		bill.DueDate = dueDate
	}
	if req.Description != nil {
		bill.Description = *req.Description
	}
	if req.Status != nil {
		bill.Status = *req.Status
	}
	if req.RemindBefore != nil {
		bill.RemindBefore = *req.RemindBefore
	}

	if _, err := s.repo.UpdateBill(ctx, *bill); err != nil {
		return nil, err
	}
	s.log.Info("updated bill in storage", slog.Int64("id", id))
	s.invalidate(userID, id)

	return s.repo.ReadBill(ctx, id, userID)
}

// MarkPaid выставляет сохранённый статус счёта в paid.
// С точки зрения классификатора paid терминален: по дате он не откатывается,
// вернуть unpaid можно только явным обновлением статуса.
func (s *BillService) MarkPaid(ctx context.Context, id, userID int64) (*models.Bill, error) {
	paid := models.StatusPaid
	return s.Update(ctx, id, userID, models.DummyUpdateBill{Status: &paid})
}

// Remove удаляет счёт по ID и инвалидирует кеш.
func (s *BillService) Remove(ctx context.Context, id, userID int64) (int64, error) {
	s.invalidate(userID, id)

	count, err := s.repo.RemoveBill(ctx, id, userID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Upcoming возвращает счета пользователя, попавшие в своё окно напоминания.
func (s *BillService) Upcoming(ctx context.Context, userID int64) ([]*models.Bill, error) {
	bills, err := s.repo.ListBills(ctx, userID)
	if err != nil {
		return nil, err
	}
	return billing.Upcoming(bills, time.Now()), nil
}

// Dashboard собирает сводку по всем счетам пользователя на текущую дату.
func (s *BillService) Dashboard(ctx context.Context, userID int64) (*models.DashboardSummary, error) {
	bills, err := s.repo.ListBills(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := time.Now()
	summary := billing.Aggregate(bills, today)
	for _, bill := range summary.UpcomingBills {
		bill.Status = billing.EffectiveStatus(bill.Status, bill.DueDate, today)
	}
	for _, bill := range summary.RecentBills {
		bill.Status = billing.EffectiveStatus(bill.Status, bill.DueDate, today)
	}
	return summary, nil
}

func (s *BillService) cacheKey(userID, id int64) string {
	return fmt.Sprintf("bill:%d:%d", userID, id)
}

func (s *BillService) invalidate(userID, id int64) {
	cacheKey := s.cacheKey(userID, id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
}
