package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

// MockRepo реализует интерфейс BillRepository
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) CreateBill(ctx context.Context, bill models.Bill) (int64, error) {
	args := m.Called(ctx, bill)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepo) ReadBill(ctx context.Context, id, userID int64) (*models.Bill, error) {
	args := m.Called(ctx, id, userID)
	if b := args.Get(0); b != nil {
		return b.(*models.Bill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) ListBills(ctx context.Context, userID int64) ([]*models.Bill, error) {
	args := m.Called(ctx, userID)
	if b := args.Get(0); b != nil {
		return b.([]*models.Bill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepo) UpdateBill(ctx context.Context, bill models.Bill) (int64, error) {
	args := m.Called(ctx, bill)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepo) RemoveBill(ctx context.Context, id, userID int64) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockCache реализует интерфейс Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newTestService(repo *MockRepo, cache *MockCache) *BillService {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewBillService(repo, cache, logger)
}

func dueIn(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func TestCreate(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)
	service := newTestService(repo, cache)

	repo.On("CreateBill", mock.Anything, mock.MatchedBy(func(bill models.Bill) bool {
		return bill.UserID == 1 &&
			bill.Name == "аренда" &&
			bill.Amount == 123450 &&
			bill.Status == models.StatusUnpaid &&
			bill.RemindBefore == 3
	})).Return(int64(10), nil)
	cache.On("Invalidate", "bill:1:10").Return(nil)

	id, err := service.Create(context.Background(), 1, models.DummyBill{
		Name:    "аренда",
		Amount:  "1234.50",
		DueDate: "2025-07-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
	repo.AssertExpectations(t)
}

func TestCreate_ExplicitRemindBefore(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)
	service := newTestService(repo, cache)

	remindBefore := 7
	repo.On("CreateBill", mock.Anything, mock.MatchedBy(func(bill models.Bill) bool {
		return bill.RemindBefore == 7
	})).Return(int64(11), nil)
	cache.On("Invalidate", mock.Anything).Return(nil)

	_, err := service.Create(context.Background(), 1, models.DummyBill{
		Name:         "интернет",
		Amount:       "500",
		DueDate:      "2025-07-01",
		RemindBefore: &remindBefore,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreate_InvalidAmount(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)
	service := newTestService(repo, cache)

	_, err := service.Create(context.Background(), 1, models.DummyBill{
		Name:    "аренда",
		Amount:  "-5",
		DueDate: "2025-07-01",
	})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "CreateBill")
}

func TestRead_AppliesEffectiveStatus(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)
	service := newTestService(repo, cache)

	stored := &models.Bill{ID: 5, UserID: 1, Status: models.StatusUnpaid, DueDate: dueIn(-2)}
	cache.On("Get", "bill:1:5", mock.Anything).Return(false, nil)
	repo.On("ReadBill", mock.Anything, int64(5), int64(1)).Return(stored, nil)
	cache.On("Set", "bill:1:5", mock.Anything, mock.Anything).Return(nil)

	bill, err := service.Read(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOverdue, bill.Status,
		"просроченный неоплаченный счёт должен читаться как overdue")
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)
	service := newTestService(repo, cache)

	stored := &models.Bill{
		ID: 5, UserID: 1, Name: "аренда", Amount: 1000,
		DueDate: dueIn(10), Status: models.StatusUnpaid, RemindBefore: 3,
	}
	repo.On("ReadBill", mock.Anything, int64(5), int64(1)).Return(stored, nil)
	repo.On("UpdateBill", mock.Anything, mock.MatchedBy(func(bill models.Bill) bool {
		// меняется только имя, остальные поля сохраняются
		return bill.Name == "квартира" && bill.Amount == 1000 && bill.RemindBefore == 3
	})).Return(int64(1), nil)
	cache.On("Invalidate", "bill:1:5").Return(nil)

	newName := "квартира"
	_, err := service.Update(context.Background(), 5, 1, models.DummyUpdateBill{Name: &newName})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestMarkPaid(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)
	service := newTestService(repo, cache)

	stored := &models.Bill{ID: 5, UserID: 1, Status: models.StatusUnpaid, DueDate: dueIn(-3)}
	repo.On("ReadBill", mock.Anything, int64(5), int64(1)).Return(stored, nil)
	repo.On("UpdateBill", mock.Anything, mock.MatchedBy(func(bill models.Bill) bool {
		return bill.Status == models.StatusPaid
	})).Return(int64(1), nil)
	cache.On("Invalidate", "bill:1:5").Return(nil)

	_, err := service.MarkPaid(context.Background(), 5, 1)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDashboard(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)
	service := newTestService(repo, cache)

	bills := []*models.Bill{
		{ID: 1, Amount: 100000, DueDate: dueIn(-5), Status: models.StatusUnpaid, RemindBefore: 3},
		{ID: 2, Amount: 50000, DueDate: dueIn(2), Status: models.StatusUnpaid, RemindBefore: 3},
		{ID: 3, Amount: 20000, DueDate: dueIn(10), Status: models.StatusUnpaid, RemindBefore: 1},
		{ID: 4, Amount: 30000, DueDate: dueIn(-1), Status: models.StatusPaid, RemindBefore: 0},
	}
	repo.On("ListBills", mock.Anything, int64(1)).Return(bills, nil)

	summary, err := service.Dashboard(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalBills)
	assert.Equal(t, 1, summary.OverdueBills)
	assert.Equal(t, int64(100000), summary.OverdueAmount)
	assert.Equal(t, 2, summary.UnpaidBills)
	assert.Equal(t, int64(70000), summary.UnpaidAmount)
	assert.Equal(t, 1, summary.PaidBills)
	assert.Equal(t, int64(30000), summary.PaidAmount)
	assert.Equal(t, int64(200000), summary.TotalAmount)

	require.Len(t, summary.UpcomingBills, 1)
	assert.Equal(t, int64(2), summary.UpcomingBills[0].ID)
}

func TestRemove(t *testing.T) {
	repo := new(MockRepo)
	cache := new(MockCache)
	service := newTestService(repo, cache)

	cache.On("Invalidate", "bill:1:5").Return(nil)
	repo.On("RemoveBill", mock.Anything, int64(5), int64(1)).Return(int64(1), nil)

	count, err := service.Remove(context.Background(), 5, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	repo.AssertExpectations(t)
}
