// Package billing содержит чистую логику жизненного цикла счёта:
// вычисление эффективного статуса, проверку окна напоминания и свёртку
// набора счетов в сводку для дашборда.
//
// Все функции тотальны и не имеют побочных эффектов: результат в любой момент
// выводится заново из сохранённых данных и текущей даты, поэтому производные
// значения нигде не персистятся.
package billing

import (
	"time"

	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

// EffectiveStatus вычисляет отображаемый статус счёта из сохранённого статуса
// и даты оплаты.
//
// Правила:
//   - paid «липкий»: однажды оплаченный счёт не возвращается обратно по дате;
//   - иначе счёт просрочен, если дата оплаты строго раньше сегодняшней
//     календарной даты (сравнение только по дате, без времени суток;
//     граница исключающая — due == today ещё не просрочен);
//   - иначе счёт не оплачен.
func EffectiveStatus(stored models.Status, dueDate, today time.Time) models.Status {
	if stored == models.StatusPaid {
		return models.StatusPaid
	}
	if truncateToDay(dueDate).Before(truncateToDay(today)) {
		return models.StatusOverdue
	}
	return models.StatusUnpaid
}

// IsUpcoming сообщает, попадает ли счёт в своё окно напоминания:
// эффективный статус unpaid (не paid и не overdue), дата оплаты не прошла
// и до неё осталось не больше RemindBefore дней.
// RemindBefore = 0 означает «только в день оплаты».
// Просроченные счета сюда не попадают: они выводятся отдельно.
func IsUpcoming(bill *models.Bill, today time.Time) bool {
	if EffectiveStatus(bill.Status, bill.DueDate, today) != models.StatusUnpaid {
		return false
	}
	daysLeft := int(truncateToDay(bill.DueDate).Sub(truncateToDay(today)).Hours() / 24)
	return daysLeft >= 0 && daysLeft <= bill.RemindBefore
}

// truncateToDay отбрасывает компонент времени, оставляя календарную дату в UTC.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
