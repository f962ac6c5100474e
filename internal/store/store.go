// Package store 以原生 SQL 存取 users 與 gadgets 資料表。
package store

import (
	"errors"
	"fmt"

	"imf-gadget-api/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	// ErrNotFound 查無資料（或條件式更新沒有命中）
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 違反唯一鍵約束
	ErrDuplicate = errors.New("duplicate record")
)

// newID 產生主鍵，測試可覆寫
var newID = uuid.NewString

// scanner 同時涵蓋 pgx.Row 與 pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

func wrap(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func wrapUnique(op, constraint string, err error) error {
	if database.IsUniqueViolation(err, constraint) {
		return fmt.Errorf("%s: %w: %w", op, ErrDuplicate, err)
	}
	return wrap(op, err)
}
