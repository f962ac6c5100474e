// File: internal/service/gadget.go
package service

import (
	"context"
	"errors"
	"time"

	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/codename"
	"imf-gadget-api/internal/database"
	"imf-gadget-api/internal/model"
	"imf-gadget-api/internal/store"

	"github.com/google/uuid"
)

// MaxCodenameAttempts 產生唯一代號的最大嘗試次數
const MaxCodenameAttempts = 10

var (
	listGadgets          = store.ListGadgets
	getGadgetByID        = store.GetGadgetByID
	gadgetCodenameExists = store.GadgetCodenameExists
	createGadget         = store.CreateGadget
	updateGadget         = store.UpdateGadget
	decommissionGadget   = store.DecommissionGadget
	setSelfDestructCode  = store.SetSelfDestructCode
	completeSelfDestruct = store.CompleteSelfDestruct
)

// Generator 代號與隨機屬性來源，*codename.Generator 直接實作
type Generator interface {
	Codename() string
	AlternativeCodename() string
	MissionSuccessProbability() int
	SelfDestructCode() string
	Description(codename string) string
}

// SelfDestructResult 自毀流程結果：第一階段帶 ConfirmationCode，第二階段 Destroyed 為 true
type SelfDestructResult struct {
	Gadget           *model.Gadget
	ConfirmationCode string
	Destroyed        bool
}

type GadgetService struct {
	db  database.DB
	gen Generator
	now func() time.Time
}

func NewGadgetService(db database.DB, gen Generator) *GadgetService {
	return &GadgetService{db: db, gen: gen, now: timeNow}
}

// List 列出裝備，status 為空時不過濾；未知狀態直接回傳空清單
func (s *GadgetService) List(ctx context.Context, status string) ([]model.Gadget, error) {
	filter := model.GadgetStatus(status)
	if filter != "" && !filter.Valid() {
		return []model.Gadget{}, nil
	}
	return listGadgets(ctx, s.db, filter)
}

func (s *GadgetService) Get(ctx context.Context, id string) (*model.Gadget, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrGadgetNotFound
	}
	g, err := getGadgetByID(ctx, s.db, id)
	if err != nil {
		return nil, notFoundAs(err, apperr.ErrGadgetNotFound)
	}
	return g, nil
}

// Create 建立新裝備，代號衝突時交替使用主要與替代產生方式重試
func (s *GadgetService) Create(ctx context.Context, name, description string) (*model.Gadget, error) {
	if name == "" {
		return nil, apperr.ErrMissingName
	}

	for attempt := 0; attempt < MaxCodenameAttempts; attempt++ {
		cn := s.gen.Codename()
		if attempt%2 == 1 {
			cn = s.gen.AlternativeCodename()
		}

		exists, err := gadgetCodenameExists(ctx, s.db, cn)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		desc := description
		if desc == "" {
			desc = s.gen.Description(cn)
		}
		g, err := createGadget(ctx, s.db, &model.Gadget{
			Name:                      name,
			Codename:                  cn,
			Description:               desc,
			Status:                    model.StatusAvailable,
			MissionSuccessProbability: s.gen.MissionSuccessProbability(),
		})
		if errors.Is(err, store.ErrDuplicate) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, apperr.ErrCodenameGeneration
}

// Update 部分更新；空字串視同未提供
func (s *GadgetService) Update(ctx context.Context, id string, patch model.GadgetPatch) (*model.Gadget, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && *patch.Name == "" {
		patch.Name = nil
	}
	if patch.Description != nil && *patch.Description == "" {
		patch.Description = nil
	}
	if patch.Status != nil {
		switch {
		case *patch.Status == "":
			patch.Status = nil
		case !patch.Status.Valid():
			return nil, apperr.ErrInvalidStatus.With("validStatuses", model.GadgetStatuses())
		}
	}
	if patch.Empty() {
		return existing, nil
	}

	g, err := updateGadget(ctx, s.db, id, patch)
	if err != nil {
		return nil, notFoundAs(err, apperr.ErrGadgetNotFound)
	}
	return g, nil
}

// Decommission 軟刪除，紀錄永遠保留
func (s *GadgetService) Decommission(ctx context.Context, id string) (*model.Gadget, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrGadgetNotFound
	}
	g, err := decommissionGadget(ctx, s.db, id, s.now().UTC())
	if err != nil {
		return nil, notFoundAs(err, apperr.ErrGadgetNotFound)
	}
	return g, nil
}

// SelfDestruct 兩階段自毀：未帶 code 時產生並儲存確認碼；帶 code 時比對後銷毀。
// 第二階段不再檢查狀態，確認碼只能使用一次。
func (s *GadgetService) SelfDestruct(ctx context.Context, id, code string) (*SelfDestructResult, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if code == "" {
		if !codename.CanSelfDestruct(g.Status) {
			return nil, apperr.ErrInvalidStatusForSelfDestruct.
				With("currentStatus", g.Status).
				With("allowedStatuses", model.SelfDestructStatuses())
		}
		newCode := s.gen.SelfDestructCode()
		if err := setSelfDestructCode(ctx, s.db, id, newCode); err != nil {
			return nil, notFoundAs(err, apperr.ErrGadgetNotFound)
		}
		g.SelfDestructCode = &newCode
		return &SelfDestructResult{Gadget: g, ConfirmationCode: newCode}, nil
	}

	if g.SelfDestructCode == nil || *g.SelfDestructCode != code {
		return nil, apperr.ErrInvalidConfirmationCode
	}
	destroyed, err := completeSelfDestruct(ctx, s.db, id, code, s.now().UTC())
	if err != nil {
		// 條件式更新沒有命中代表確認碼已被使用
		return nil, notFoundAs(err, apperr.ErrInvalidConfirmationCode)
	}
	return &SelfDestructResult{Gadget: destroyed, Destroyed: true}, nil
}

func notFoundAs(err error, target *apperr.Error) error {
	if errors.Is(err, store.ErrNotFound) {
		return target
	}
	return err
}
