// File: internal/model/gadget.go
package model

import "time"

// GadgetStatus 裝備狀態
type GadgetStatus string

const (
	StatusAvailable      GadgetStatus = "Available"
	StatusDeployed       GadgetStatus = "Deployed"
	StatusDestroyed      GadgetStatus = "Destroyed"
	StatusDecommissioned GadgetStatus = "Decommissioned"
)

// GadgetStatuses 回傳所有合法狀態（固定順序）
func GadgetStatuses() []GadgetStatus {
	return []GadgetStatus{StatusAvailable, StatusDeployed, StatusDestroyed, StatusDecommissioned}
}

// SelfDestructStatuses 可啟動自毀程序的狀態
func SelfDestructStatuses() []GadgetStatus {
	return []GadgetStatus{StatusAvailable, StatusDeployed}
}

// Valid 判斷是否為已知狀態
func (s GadgetStatus) Valid() bool {
	for _, v := range GadgetStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

type Gadget struct {
	ID                        string       `db:"id" json:"id"`
	Name                      string       `db:"name" json:"name"`
	Codename                  string       `db:"codename" json:"codename"`
	Description               string       `db:"description" json:"description"`
	Status                    GadgetStatus `db:"status" json:"status"`
	MissionSuccessProbability int          `db:"mission_success_probability" json:"missionSuccessProbability"`
	SelfDestructCode          *string      `db:"self_destruct_code" json:"-"`
	DecommissionedAt          *time.Time   `db:"decommissioned_at" json:"decommissionedAt"`
	SelfDestructAt            *time.Time   `db:"self_destruct_at" json:"selfDestructAt"`
	CreatedAt                 time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt                 time.Time    `db:"updated_at" json:"updatedAt"`
}

// GadgetPatch 部分更新欄位，nil 表示不變更
type GadgetPatch struct {
	Name        *string
	Description *string
	Status      *GadgetStatus
}

// Empty 沒有任何欄位需要更新
func (p GadgetPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Status == nil
}
