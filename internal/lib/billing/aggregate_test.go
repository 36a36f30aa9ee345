package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

// snapshot — четыре счёта, покрывающие все эффективные статусы.
func snapshot() []*models.Bill {
	return []*models.Bill{
		{ID: 1, Name: "аренда", Amount: 100000, DueDate: day(-5), Status: models.StatusUnpaid, RemindBefore: 3,
			UpdatedAt: day(-5)},
		{ID: 2, Name: "интернет", Amount: 50000, DueDate: day(2), Status: models.StatusUnpaid, RemindBefore: 3,
			UpdatedAt: day(-4)},
		{ID: 3, Name: "телефон", Amount: 20000, DueDate: day(10), Status: models.StatusUnpaid, RemindBefore: 1,
			UpdatedAt: day(-3)},
		{ID: 4, Name: "электричество", Amount: 30000, DueDate: day(-1), Status: models.StatusPaid, RemindBefore: 0,
			UpdatedAt: day(-2)},
	}
}

func TestAggregate(t *testing.T) {
	summary := Aggregate(snapshot(), day(0))

	assert.Equal(t, 4, summary.TotalBills)
	assert.Equal(t, 1, summary.PaidBills)
	assert.Equal(t, 2, summary.UnpaidBills)
	assert.Equal(t, 1, summary.OverdueBills)

	assert.Equal(t, int64(200000), summary.TotalAmount)
	assert.Equal(t, int64(30000), summary.PaidAmount)
	assert.Equal(t, int64(70000), summary.UnpaidAmount)
	assert.Equal(t, int64(100000), summary.OverdueAmount)

	// в окно напоминания попадает только счёт с due через 2 дня
	require.Len(t, summary.UpcomingBills, 1)
	assert.Equal(t, int64(2), summary.UpcomingBills[0].ID)
}

func TestAggregateInvariants(t *testing.T) {
	summary := Aggregate(snapshot(), day(0))

	assert.Equal(t, summary.TotalBills,
		summary.PaidBills+summary.UnpaidBills+summary.OverdueBills,
		"счётчики по статусам должны сходиться с общим количеством")
	assert.Equal(t, summary.TotalAmount,
		summary.PaidAmount+summary.UnpaidAmount+summary.OverdueAmount,
		"суммы по статусам должны сходиться с общей суммой")
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil, day(0))

	assert.Equal(t, 0, summary.TotalBills)
	assert.Equal(t, int64(0), summary.TotalAmount)
	assert.Empty(t, summary.UpcomingBills)
	assert.Empty(t, summary.RecentBills)
}

func TestAggregateOrderIndependent(t *testing.T) {
	straight := snapshot()
	reversed := snapshot()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	a := Aggregate(straight, day(0))
	b := Aggregate(reversed, day(0))

	assert.Equal(t, a.TotalBills, b.TotalBills)
	assert.Equal(t, a.TotalAmount, b.TotalAmount)
	require.Equal(t, len(a.UpcomingBills), len(b.UpcomingBills))
	for i := range a.UpcomingBills {
		assert.Equal(t, a.UpcomingBills[i].ID, b.UpcomingBills[i].ID)
	}
	require.Equal(t, len(a.RecentBills), len(b.RecentBills))
	for i := range a.RecentBills {
		assert.Equal(t, a.RecentBills[i].ID, b.RecentBills[i].ID)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	bills := snapshot()
	first := Aggregate(bills, day(0))
	second := Aggregate(bills, day(0))
	assert.Equal(t, first, second)
}

func TestAggregateUpcomingOrder(t *testing.T) {
	bills := []*models.Bill{
		{ID: 7, Amount: 100, DueDate: day(2), Status: models.StatusUnpaid, RemindBefore: 5},
		{ID: 3, Amount: 100, DueDate: day(1), Status: models.StatusUnpaid, RemindBefore: 5},
		{ID: 5, Amount: 100, DueDate: day(1), Status: models.StatusUnpaid, RemindBefore: 5},
	}
	summary := Aggregate(bills, day(0))

	require.Len(t, summary.UpcomingBills, 3)
	assert.Equal(t, int64(3), summary.UpcomingBills[0].ID)
	assert.Equal(t, int64(5), summary.UpcomingBills[1].ID)
	assert.Equal(t, int64(7), summary.UpcomingBills[2].ID)
}

func TestAggregateRecentBills(t *testing.T) {
	bills := make([]*models.Bill, 0, 7)
	for i := 1; i <= 7; i++ {
		bills = append(bills, &models.Bill{
			ID:        int64(i),
			Amount:    100,
			DueDate:   day(30),
			Status:    models.StatusUnpaid,
			UpdatedAt: day(-i),
		})
	}
	summary := Aggregate(bills, day(0))

	// не больше лимита, самые свежие первыми
	require.Len(t, summary.RecentBills, RecentBillsLimit)
	assert.Equal(t, int64(1), summary.RecentBills[0].ID)
	assert.Equal(t, int64(5), summary.RecentBills[4].ID)
}

func TestAggregateRecentBillsTieBreak(t *testing.T) {
	same := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	bills := []*models.Bill{
		{ID: 1, Amount: 100, DueDate: day(30), Status: models.StatusUnpaid, UpdatedAt: same},
		{ID: 2, Amount: 100, DueDate: day(30), Status: models.StatusUnpaid, UpdatedAt: same},
	}
	summary := Aggregate(bills, day(0))

	require.Len(t, summary.RecentBills, 2)
	assert.Equal(t, int64(2), summary.RecentBills[0].ID)
	assert.Equal(t, int64(1), summary.RecentBills[1].ID)
}

func TestUpcoming(t *testing.T) {
	bills := snapshot()
	upcoming := Upcoming(bills, day(0))

	require.Len(t, upcoming, 1)
	assert.Equal(t, int64(2), upcoming[0].ID)
}
