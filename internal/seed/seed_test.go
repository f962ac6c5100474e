package seed

import (
	"context"
	"errors"
	"sync"
	"testing"

	"imf-gadget-api/internal/database"
	"imf-gadget-api/internal/model"
	"imf-gadget-api/internal/service"
	"imf-gadget-api/internal/store"
	"imf-gadget-api/internal/worker"

	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	hashPassword = service.HashPassword
	upsertUser = store.UpsertUser
	upsertGadget = store.UpsertGadget
	newPool = worker.NewPool
}

type fixedGenerator struct {
	mu sync.Mutex
	n  int
}

func (g *fixedGenerator) Codename() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return "The Test Codename " + string(rune('A'+g.n-1))
}

func (g *fixedGenerator) MissionSuccessProbability() int { return 77 }

func testConfig() *Config {
	return &Config{DatabaseURL: "db", AdminPassword: "admin123", AgentPassword: "agent123", Workers: 2}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://x")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "admin123", cfg.AdminPassword)
	require.Equal(t, "agent123", cfg.AgentPassword)
	require.False(t, cfg.Reset)
	require.Equal(t, 2, cfg.Workers)

	t.Setenv("SEED_AGENT_PASSWORD", "other")
	t.Setenv("SEED_RESET", "true")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "other", cfg.AgentPassword)
	require.True(t, cfg.Reset)

	t.Setenv("DATABASE_URL", "")
	_, err = LoadConfig()
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hashPassword = func(pw string) (string, error) { return "hashed:" + pw, nil }

	var users []model.User
	upsertUser = func(_ context.Context, _ database.DB, u *model.User) (bool, error) {
		users = append(users, *u)
		return u.Role == model.RoleAdmin, nil
	}
	var gadgets []model.Gadget
	upsertGadget = func(_ context.Context, _ database.DB, g *model.Gadget) (bool, error) {
		gadgets = append(gadgets, *g)
		return true, nil
	}

	sum, err := Run(context.Background(), &database.FakeDB{}, &fixedGenerator{}, testConfig())
	require.NoError(t, err)
	require.Equal(t, Summary{UsersCreated: 1, GadgetsCreated: 5}, sum)

	require.Len(t, users, 2)
	require.Equal(t, "admin@imf.gov", users[0].Email)
	require.Equal(t, "hashed:admin123", users[0].PasswordHash)
	require.Equal(t, model.RoleAgent, users[1].Role)
	require.Equal(t, "hashed:agent123", users[1].PasswordHash)

	require.Len(t, gadgets, len(SampleGadgets))
	seen := map[string]bool{}
	for i, g := range gadgets {
		require.Equal(t, SampleGadgets[i].Name, g.Name)
		require.Equal(t, 77, g.MissionSuccessProbability)
		require.False(t, seen[g.Codename])
		seen[g.Codename] = true
	}
	require.Equal(t, model.StatusDeployed, gadgets[1].Status)
	require.Empty(t, SampleGadgets[0].Codename)
}

func TestRunHashFailure(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hashPassword = func(string) (string, error) { return "", errors.New("bcrypt") }
	upsertUser = func(context.Context, database.DB, *model.User) (bool, error) {
		t.Fatal("upsert should not run")
		return false, nil
	}
	_, err := Run(context.Background(), &database.FakeDB{}, &fixedGenerator{}, testConfig())
	require.ErrorContains(t, err, "bcrypt")
}

func TestRunUpsertFailure(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hashPassword = func(pw string) (string, error) { return pw, nil }
	upsertUser = func(context.Context, database.DB, *model.User) (bool, error) { return true, nil }
	upsertGadget = func(context.Context, database.DB, *model.Gadget) (bool, error) {
		return false, errors.New("insert")
	}
	sum, err := Run(context.Background(), &database.FakeDB{}, &fixedGenerator{}, testConfig())
	require.EqualError(t, err, "insert")
	require.Equal(t, 2, sum.UsersCreated)
	require.Zero(t, sum.GadgetsCreated)
}

func TestRunCanceled(t *testing.T) {
	t.Cleanup(restoreGlobals)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, &database.FakeDB{}, &fixedGenerator{}, testConfig())
	require.ErrorIs(t, err, context.Canceled)
}
