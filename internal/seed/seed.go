// Package seed 建立預設帳號與範例裝備，可重複執行
package seed

import (
	"context"
	"fmt"
	"log"

	"imf-gadget-api/internal/database"
	"imf-gadget-api/internal/model"
	"imf-gadget-api/internal/service"
	"imf-gadget-api/internal/store"
	"imf-gadget-api/internal/worker"

	"github.com/caarlos0/env/v11"
)

// Config cmd/seed 的環境變數
type Config struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD" envDefault:"admin123"`
	AgentPassword string `env:"SEED_AGENT_PASSWORD" envDefault:"agent123"`
	// Reset 先回滾所有 migration 再重建
	Reset   bool `env:"SEED_RESET" envDefault:"false"`
	Workers int  `env:"SEED_WORKERS" envDefault:"2"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse seed config: %w", err)
	}
	return cfg, nil
}

// Generator 範例裝備所需的代號與成功率
type Generator interface {
	Codename() string
	MissionSuccessProbability() int
}

// Account 預設帳號
type Account struct {
	Email    string
	Password string
	Role     model.Role
}

// Accounts 回傳 admin 與 agent 兩個預設帳號
func (c *Config) Accounts() []Account {
	return []Account{
		{Email: "admin@imf.gov", Password: c.AdminPassword, Role: model.RoleAdmin},
		{Email: "agent@imf.gov", Password: c.AgentPassword, Role: model.RoleAgent},
	}
}

// SampleGadgets 範例裝備，代號與成功率於寫入時產生
var SampleGadgets = []model.Gadget{
	{Name: "Facial Recognition Scanner", Description: "Advanced biometric scanner with quantum encryption", Status: model.StatusAvailable},
	{Name: "Stealth Communication Device", Description: "Encrypted communication with satellite uplink", Status: model.StatusDeployed},
	{Name: "Electromagnetic Pulse Generator", Description: "Portable EMP device for disabling electronics", Status: model.StatusAvailable},
	{Name: "Holographic Projector", Description: "Creates realistic 3D holograms for distraction", Status: model.StatusAvailable},
	{Name: "Nano Surveillance Drone", Description: "Microscopic drone with live video feed", Status: model.StatusDeployed},
}

var (
	hashPassword = service.HashPassword
	upsertUser   = store.UpsertUser
	upsertGadget = store.UpsertGadget
	newPool      = worker.NewPool
)

// Summary 本次實際新增的筆數，已存在的資料不計
type Summary struct {
	UsersCreated   int
	GadgetsCreated int
}

// Run 寫入預設帳號與範例裝備；已存在的 email 或代號會略過
func Run(ctx context.Context, db database.DB, gen Generator, cfg *Config) (Summary, error) {
	var sum Summary

	accounts := cfg.Accounts()
	hashes, err := hashAll(ctx, accounts, cfg.Workers)
	if err != nil {
		return sum, err
	}

	for i, acc := range accounts {
		created, err := upsertUser(ctx, db, &model.User{
			Email:        acc.Email,
			PasswordHash: hashes[i],
			Role:         acc.Role,
		})
		if err != nil {
			return sum, err
		}
		if created {
			sum.UsersCreated++
		}
		log.Printf("👤 user %s (%s) created=%t", acc.Email, acc.Role, created)
	}

	for _, sample := range SampleGadgets {
		g := sample
		g.Codename = gen.Codename()
		g.MissionSuccessProbability = gen.MissionSuccessProbability()
		created, err := upsertGadget(ctx, db, &g)
		if err != nil {
			return sum, err
		}
		if created {
			sum.GadgetsCreated++
		}
		log.Printf("🔧 gadget %s (%s) created=%t", g.Codename, g.Name, created)
	}
	return sum, nil
}

// hashAll 以工作池平行計算 bcrypt 雜湊，結果順序與 accounts 相同
func hashAll(ctx context.Context, accounts []Account, workers int) ([]string, error) {
	hashes := make([]string, len(accounts))
	p := newPool(ctx, workers)
	for i, acc := range accounts {
		if !p.Submit(func(context.Context) error {
			h, err := hashPassword(acc.Password)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", acc.Email, err)
			}
			hashes[i] = h
			return nil
		}) {
			break
		}
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return hashes, nil
}
