package store

import (
	"context"
	"fmt"
	"time"

	"imf-gadget-api/internal/database"
	"imf-gadget-api/internal/model"
)

// CodenameConstraint gadgets.codename 的唯一鍵名稱
const CodenameConstraint = "gadgets_codename_key"

const gadgetColumns = `id::text, name, codename, description, status, mission_success_probability,
	self_destruct_code, decommissioned_at, self_destruct_at, created_at, updated_at`

func scanGadget(row scanner) (*model.Gadget, error) {
	g := &model.Gadget{}
	if err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Codename,
		&g.Description,
		&g.Status,
		&g.MissionSuccessProbability,
		&g.SelfDestructCode,
		&g.DecommissionedAt,
		&g.SelfDestructAt,
		&g.CreatedAt,
		&g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return g, nil
}

// ListGadgets 依建立時間新到舊列出；status 為空字串時不過濾
func ListGadgets(ctx context.Context, db database.DB, status model.GadgetStatus) ([]model.Gadget, error) {
	query := `SELECT ` + gadgetColumns + ` FROM gadgets`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListGadgets: %w", err)
	}
	defer rows.Close()

	gadgets := []model.Gadget{}
	for rows.Next() {
		g, err := scanGadget(rows)
		if err != nil {
			return nil, fmt.Errorf("ListGadgets: %w", err)
		}
		gadgets = append(gadgets, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListGadgets: %w", err)
	}
	return gadgets, nil
}

func GetGadgetByID(ctx context.Context, db database.DB, id string) (*model.Gadget, error) {
	row := db.QueryRow(ctx,
		`SELECT `+gadgetColumns+` FROM gadgets WHERE id = $1`,
		id,
	)
	g, err := scanGadget(row)
	if err != nil {
		return nil, wrap("GetGadgetByID", err)
	}
	return g, nil
}

func GadgetCodenameExists(ctx context.Context, db database.DB, codename string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM gadgets WHERE codename = $1)`,
		codename,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("GadgetCodenameExists: %w", err)
	}
	return exists, nil
}

// CreateGadget 寫入新裝備；代號重複時回傳 ErrDuplicate
func CreateGadget(ctx context.Context, db database.DB, g *model.Gadget) (*model.Gadget, error) {
	g.ID = newID()
	row := db.QueryRow(ctx,
		`INSERT INTO gadgets (id, name, codename, description, status, mission_success_probability)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		g.ID,
		g.Name,
		g.Codename,
		g.Description,
		string(g.Status),
		g.MissionSuccessProbability,
	)
	if err := row.Scan(&g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, wrapUnique("CreateGadget", CodenameConstraint, err)
	}
	return g, nil
}

// UpdateGadget 只更新 patch 中非 nil 的欄位
func UpdateGadget(ctx context.Context, db database.DB, id string, patch model.GadgetPatch) (*model.Gadget, error) {
	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}
	row := db.QueryRow(ctx,
		`UPDATE gadgets
		 SET name = COALESCE($2, name),
		     description = COALESCE($3, description),
		     status = COALESCE($4, status),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+gadgetColumns,
		id,
		patch.Name,
		patch.Description,
		status,
	)
	g, err := scanGadget(row)
	if err != nil {
		return nil, wrap("UpdateGadget", err)
	}
	return g, nil
}

// DecommissionGadget 軟刪除：狀態改為 Decommissioned 並記錄時間
func DecommissionGadget(ctx context.Context, db database.DB, id string, at time.Time) (*model.Gadget, error) {
	row := db.QueryRow(ctx,
		`UPDATE gadgets
		 SET status = $2, decommissioned_at = $3, updated_at = now()
		 WHERE id = $1
		 RETURNING `+gadgetColumns,
		id,
		string(model.StatusDecommissioned),
		at,
	)
	g, err := scanGadget(row)
	if err != nil {
		return nil, wrap("DecommissionGadget", err)
	}
	return g, nil
}

// SetSelfDestructCode 儲存自毀確認碼，覆蓋先前尚未使用的碼
func SetSelfDestructCode(ctx context.Context, db database.DB, id, code string) error {
	tag, err := db.Exec(ctx,
		`UPDATE gadgets SET self_destruct_code = $2, updated_at = now() WHERE id = $1`,
		id,
		code,
	)
	if err != nil {
		return fmt.Errorf("SetSelfDestructCode: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("SetSelfDestructCode: %w", ErrNotFound)
	}
	return nil
}

// CompleteSelfDestruct 僅在確認碼相符時將裝備標記為 Destroyed 並清除確認碼；
// 不相符時回傳 ErrNotFound
func CompleteSelfDestruct(ctx context.Context, db database.DB, id, code string, at time.Time) (*model.Gadget, error) {
	row := db.QueryRow(ctx,
		`UPDATE gadgets
		 SET status = $3, self_destruct_at = $4, self_destruct_code = NULL, updated_at = now()
		 WHERE id = $1 AND self_destruct_code = $2
		 RETURNING `+gadgetColumns,
		id,
		code,
		string(model.StatusDestroyed),
		at,
	)
	g, err := scanGadget(row)
	if err != nil {
		return nil, wrap("CompleteSelfDestruct", err)
	}
	return g, nil
}

// UpsertGadget 供 seed 使用，代號已存在時略過；回傳是否新增
func UpsertGadget(ctx context.Context, db database.DB, g *model.Gadget) (bool, error) {
	tag, err := db.Exec(ctx,
		`INSERT INTO gadgets (id, name, codename, description, status, mission_success_probability)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (codename) DO NOTHING`,
		newID(),
		g.Name,
		g.Codename,
		g.Description,
		string(g.Status),
		g.MissionSuccessProbability,
	)
	if err != nil {
		return false, fmt.Errorf("UpsertGadget: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
