// Package models содержит производную структуру сводки по счетам пользователя.
// Сводка не хранится в базе: она пересчитывается при каждом запросе дашборда
// из снимка счетов и текущей даты.
package models

// DashboardSummary — сводка по всем счетам пользователя: счётчики и денежные
// суммы по эффективным статусам плюс два производных списка.
// Инварианты: сумма счётчиков по статусам равна TotalBills,
// сумма денежных сумм по статусам равна TotalAmount.
type DashboardSummary struct {
	TotalBills    int     `json:"total_bills"`    // Всего счетов
	PaidBills     int     `json:"paid_bills"`     // Оплаченных
	UnpaidBills   int     `json:"unpaid_bills"`   // Неоплаченных
	OverdueBills  int     `json:"overdue_bills"`  // Просроченных
	TotalAmount   int64   `json:"total_amount"`   // Общая сумма в минорных единицах
	PaidAmount    int64   `json:"paid_amount"`    // Сумма оплаченных
	UnpaidAmount  int64   `json:"unpaid_amount"`  // Сумма неоплаченных
	OverdueAmount int64   `json:"overdue_amount"` // Сумма просроченных
	UpcomingBills []*Bill `json:"upcoming_bills"` // Счета в окне напоминания, по возрастанию даты оплаты
	RecentBills   []*Bill `json:"recent_bills"`   // Последние изменённые счета, по убыванию updated_at
}
