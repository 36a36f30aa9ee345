package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/bill-reminder/internal/models"
)

// CreateBill вставляет новую запись счёта и возвращает её ID.
func (s *Storage) CreateBill(ctx context.Context, bill models.Bill) (int64, error) {
	const op = "storage.CreateBill"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO bills (user_id, name, amount, due_date, description, status, remind_before)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		bill.UserID, bill.Name, bill.Amount, bill.DueDate, bill.Description,
		bill.Status, bill.RemindBefore).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadBill возвращает счёт по ID в пределах счетов одного пользователя.
// Если счёт не существует или принадлежит другому пользователю,
// возвращается ErrBillNotFound.
func (s *Storage) ReadBill(ctx context.Context, id, userID int64) (*models.Bill, error) {
	const op = "storage.ReadBill"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, name, amount, due_date, description, status, remind_before,
			      created_at, updated_at
			  FROM bills WHERE id = $1 AND user_id = $2`
	row := s.DB.QueryRowContext(ctx, query, id, userID)

	var result models.Bill
	if err := row.Scan(&result.ID, &result.UserID, &result.Name, &result.Amount, &result.DueDate,
		&result.Description, &result.Status, &result.RemindBefore,
		&result.CreatedAt, &result.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrBillNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListBills возвращает все счета пользователя, упорядоченные по дате оплаты.
func (s *Storage) ListBills(ctx context.Context, userID int64) ([]*models.Bill, error) {
	const op = "storage.ListBills"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, name, amount, due_date, description, status, remind_before,
			      created_at, updated_at
			  FROM bills
			  WHERE user_id = $1
			  ORDER BY due_date, id`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Bill
	for rows.Next() {
		var item models.Bill
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Amount, &item.DueDate,
			&item.Description, &item.Status, &item.RemindBefore,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateBill перезаписывает изменяемые поля счёта по его ID и возвращает
// количество изменённых строк. Обновление выполняется только в пределах
// счетов владельца.
func (s *Storage) UpdateBill(ctx context.Context, bill models.Bill) (int64, error) {
	const op = "storage.UpdateBill"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE bills
			  SET name = $1, amount = $2, due_date = $3, description = $4,
			      status = $5, remind_before = $6, updated_at = CURRENT_TIMESTAMP
			  WHERE id = $7 AND user_id = $8`
	result, err := s.DB.ExecContext(ctx, query,
		bill.Name, bill.Amount, bill.DueDate, bill.Description,
		bill.Status, bill.RemindBefore, bill.ID, bill.UserID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrBillNotFound)
	}
	return rowsAffected, nil
}

// RemoveBill удаляет счёт по ID в пределах счетов одного пользователя
// и возвращает количество удалённых строк.
func (s *Storage) RemoveBill(ctx context.Context, id, userID int64) (int64, error) {
	const op = "storage.RemoveBill"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM bills WHERE id = $1 AND user_id = $2`
	result, err := s.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrBillNotFound)
	}
	return rowsAffected, nil
}

// FindBillsDueForReminder находит неоплаченные счета, попавшие в своё окно
// напоминания (дата оплаты ещё не прошла, но до неё осталось не больше
// remind_before дней), вместе с данными владельца для отправки уведомления.
func (s *Storage) FindBillsDueForReminder(ctx context.Context) ([]*models.ReminderInfo, error) {
	const op = "storage.FindBillsDueForReminder"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
			      u.email,
			      u.name,
			      b.name,
			      b.amount,
			      b.due_date,
			      u.email_notify,
			      u.telegram_notify,
			      u.telegram_chat_id
			  FROM bills b
			  JOIN users u ON b.user_id = u.id
			  WHERE b.status = 'unpaid'
			    AND b.due_date >= CURRENT_DATE
			    AND b.due_date - b.remind_before <= CURRENT_DATE`
	return s.queryReminders(ctx, op, query)
}

// FindOverdueBills находит неоплаченные счета с прошедшей датой оплаты.
// Сохранённый статус при этом не меняется: просроченность выводится
// классификатором при каждом чтении.
func (s *Storage) FindOverdueBills(ctx context.Context) ([]*models.ReminderInfo, error) {
	const op = "storage.FindOverdueBills"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
			      u.email,
			      u.name,
			      b.name,
			      b.amount,
			      b.due_date,
			      u.email_notify,
			      u.telegram_notify,
			      u.telegram_chat_id
			  FROM bills b
			  JOIN users u ON b.user_id = u.id
			  WHERE b.status = 'unpaid'
			    AND b.due_date < CURRENT_DATE`
	return s.queryReminders(ctx, op, query)
}

func (s *Storage) queryReminders(ctx context.Context, op, query string) ([]*models.ReminderInfo, error) {
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ReminderInfo
	for rows.Next() {
		var ri models.ReminderInfo
		if err = rows.Scan(&ri.Email, &ri.UserName, &ri.BillName, &ri.Amount, &ri.DueDate,
			&ri.EmailNotify, &ri.TelegramNotify, &ri.TelegramChatID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &ri)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
