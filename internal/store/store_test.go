package store

import (
	"testing"
	"time"

	"imf-gadget-api/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

/* ---------- 假實作 ---------- */

// fakeRow 實作 pgx.Row，依 dest 數量決定要填入的欄位：
// 11 → gadget、6 → user、2 → created_at/updated_at、1 → EXISTS
type fakeRow struct {
	scanErr error
	user    *model.User
	gadget  *model.Gadget
	exists  bool
	at      time.Time
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 11:
		fillGadget(dest, r.gadget)
	case 6:
		u := r.user
		*dest[0].(*string) = u.ID
		*dest[1].(*string) = u.Email
		*dest[2].(*string) = u.PasswordHash
		*dest[3].(*model.Role) = u.Role
		*dest[4].(*time.Time) = u.CreatedAt
		*dest[5].(*time.Time) = u.UpdatedAt
	case 2:
		*dest[0].(*time.Time) = r.at
		*dest[1].(*time.Time) = r.at
	case 1:
		*dest[0].(*bool) = r.exists
	default:
		panic("fakeRow.Scan: unexpected number of dest")
	}
	return nil
}

func fillGadget(dest []any, g *model.Gadget) {
	*dest[0].(*string) = g.ID
	*dest[1].(*string) = g.Name
	*dest[2].(*string) = g.Codename
	*dest[3].(*string) = g.Description
	*dest[4].(*model.GadgetStatus) = g.Status
	*dest[5].(*int) = g.MissionSuccessProbability
	*dest[6].(**string) = g.SelfDestructCode
	*dest[7].(**time.Time) = g.DecommissionedAt
	*dest[8].(**time.Time) = g.SelfDestructAt
	*dest[9].(*time.Time) = g.CreatedAt
	*dest[10].(*time.Time) = g.UpdatedAt
}

// fakeRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeRows struct {
	data    []model.Gadget
	idx     int
	scanErr error
	err     error
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	g := r.data[r.idx]
	r.idx++
	fillGadget(dest, &g)
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

const fixedID = "5f0c6f0e-8a61-4d3b-9a57-3c1e2b7d9a10"

// fixID 讓 newID 回傳固定值，測試結束後還原
func fixID(t *testing.T) {
	t.Cleanup(func() { newID = uuid.NewString })
	newID = func() string { return fixedID }
}

func uniqueErr(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}
