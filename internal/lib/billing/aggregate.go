package billing

import (
	"sort"
	"time"

	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

// RecentBillsLimit — сколько последних изменённых счетов попадает в сводку.
const RecentBillsLimit = 5

// Aggregate сворачивает снимок счетов пользователя в сводку за один проход.
//
// Для каждого счёта вычисляется эффективный статус, увеличивается
// соответствующий счётчик и денежная сумма; TotalBills и TotalAmount
// накапливаются безусловно, поэтому счётчики по статусам всегда сходятся
// с итогами. Суммы считаются в минорных единицах (int64) — никакого дрейфа
// округления при повторной агрегации.
//
// UpcomingBills упорядочен по возрастанию даты оплаты, при равенстве — по
// возрастанию id; RecentBills — по убыванию updated_at, при равенстве — по
// убыванию id, не больше RecentBillsLimit записей. Результат детерминирован
// и не зависит от исходного порядка входной коллекции.
func Aggregate(bills []*models.Bill, today time.Time) *models.DashboardSummary {
	summary := &models.DashboardSummary{
		UpcomingBills: []*models.Bill{},
	}

	recent := make([]*models.Bill, 0, len(bills))
	for _, bill := range bills {
		summary.TotalBills++
		summary.TotalAmount += bill.Amount

		switch EffectiveStatus(bill.Status, bill.DueDate, today) {
		case models.StatusPaid:
			summary.PaidBills++
			summary.PaidAmount += bill.Amount
		case models.StatusOverdue:
			summary.OverdueBills++
			summary.OverdueAmount += bill.Amount
		default:
			summary.UnpaidBills++
			summary.UnpaidAmount += bill.Amount
		}

		if IsUpcoming(bill, today) {
			summary.UpcomingBills = append(summary.UpcomingBills, bill)
		}
		recent = append(recent, bill)
	}

	sort.Slice(summary.UpcomingBills, func(i, j int) bool {
		a, b := summary.UpcomingBills[i], summary.UpcomingBills[j]
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		return a.ID < b.ID
	})

	sort.Slice(recent, func(i, j int) bool {
		a, b := recent[i], recent[j]
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.ID > b.ID
	})
	if len(recent) > RecentBillsLimit {
		recent = recent[:RecentBillsLimit]
	}
	summary.RecentBills = recent

	return summary
}

// Upcoming возвращает счета, попадающие в своё окно напоминания,
// упорядоченные по возрастанию даты оплаты (при равенстве — по id).
func Upcoming(bills []*models.Bill, today time.Time) []*models.Bill {
	result := []*models.Bill{}
	for _, bill := range bills {
		if IsUpcoming(bill, today) {
			result = append(result, bill)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].DueDate.Equal(result[j].DueDate) {
			return result[i].DueDate.Before(result[j].DueDate)
		}
		return result[i].ID < result[j].ID
	})
	return result
}
