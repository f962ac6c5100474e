package store

import (
	"context"
	"fmt"

	"imf-gadget-api/internal/database"
	"imf-gadget-api/internal/model"
)

const userColumns = `id::text, email, password_hash, role, created_at, updated_at`

func scanUser(row scanner) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("GetUserByID", err)
	}
	return u, nil
}

// GetUserByEmail 以 email 精確比對（大小寫敏感）
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrap("GetUserByEmail", err)
	}
	return u, nil
}

// CreateUser 寫入新使用者並回填 ID 與時間戳；email 重複時回傳 ErrDuplicate
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	u.ID = newID()
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		u.ID,
		u.Email,
		u.PasswordHash,
		string(u.Role),
	)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, wrapUnique("CreateUser", "users_email_key", err)
	}
	return u, nil
}

// UpsertUser 供 seed 使用，email 已存在時不做任何事；回傳是否新增
func UpsertUser(ctx context.Context, db database.DB, u *model.User) (bool, error) {
	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING`,
		newID(),
		u.Email,
		u.PasswordHash,
		string(u.Role),
	)
	if err != nil {
		return false, fmt.Errorf("UpsertUser: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
