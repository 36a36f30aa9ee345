// Package repository реализует хранилище данных на основе PostgreSQL
// для управления счетами и пользователями. Предоставляет методы
// создания, чтения, обновления и удаления записей, а также выборки
// счетов для напоминаний.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrBillNotFound возвращается, когда счёт не существует или принадлежит
// другому пользователю. Наружу эти два случая не различаются.
var ErrBillNotFound = errors.New("bill not found")

// ErrUserNotFound возвращается, когда пользователь не найден.
var ErrUserNotFound = errors.New("user not found")

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы со счетами и пользователями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'bills'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table bills missing or query error: %w", err)
	}
	return nil
}
