package gadgets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"imf-gadget-api/internal/apperr"
	"imf-gadget-api/internal/model"
	"imf-gadget-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const gadgetID = "5f1d7c1e-2b53-4c0a-9a55-7d1f3b9e8a20"

type testValidator struct{ v *validator.Validate }

func (tv testValidator) Validate(i any) error { return tv.v.Struct(i) }

type stubService struct {
	listFn         func(ctx context.Context, status string) ([]model.Gadget, error)
	getFn          func(ctx context.Context, id string) (*model.Gadget, error)
	createFn       func(ctx context.Context, name, description string) (*model.Gadget, error)
	updateFn       func(ctx context.Context, id string, patch model.GadgetPatch) (*model.Gadget, error)
	decommissionFn func(ctx context.Context, id string) (*model.Gadget, error)
	selfDestructFn func(ctx context.Context, id, code string) (*service.SelfDestructResult, error)
}

func (s *stubService) List(ctx context.Context, status string) ([]model.Gadget, error) {
	return s.listFn(ctx, status)
}

func (s *stubService) Get(ctx context.Context, id string) (*model.Gadget, error) {
	return s.getFn(ctx, id)
}

func (s *stubService) Create(ctx context.Context, name, description string) (*model.Gadget, error) {
	return s.createFn(ctx, name, description)
}

func (s *stubService) Update(ctx context.Context, id string, patch model.GadgetPatch) (*model.Gadget, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubService) Decommission(ctx context.Context, id string) (*model.Gadget, error) {
	return s.decommissionFn(ctx, id)
}

func (s *stubService) SelfDestruct(ctx context.Context, id, code string) (*service.SelfDestructResult, error) {
	return s.selfDestructFn(ctx, id, code)
}

func newCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = testValidator{v: validator.New()}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetPath("/api/gadgets/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func sample() *model.Gadget {
	code := "AB12-CD34"
	return &model.Gadget{
		ID:                        gadgetID,
		Name:                      "Laser Watch",
		Codename:                  "The Silent Blue Fox",
		Description:               "Cuts through steel.",
		Status:                    model.StatusAvailable,
		MissionSuccessProbability: 87,
		SelfDestructCode:          &code,
		CreatedAt:                 time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:                 time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestListHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotStatus string
		svc := &stubService{listFn: func(_ context.Context, status string) ([]model.Gadget, error) {
			gotStatus = status
			return []model.Gadget{*sample()}, nil
		}}
		ctx, rec := newCtx(http.MethodGet, "/api/gadgets?status=Available", "")
		require.NoError(t, ListHandler(svc)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Available", gotStatus)

		body := decode(t, rec)
		require.Equal(t, "Gadgets retrieved successfully", body["message"])
		require.EqualValues(t, 1, body["count"])
		g := body["gadgets"].([]any)[0].(map[string]any)
		require.Equal(t, "The Silent Blue Fox - 87% success probability", g["probabilityText"])
		require.NotContains(t, g, "selfDestructCode")
		require.NotContains(t, rec.Body.String(), "AB12-CD34")
	})

	t.Run("empty list", func(t *testing.T) {
		svc := &stubService{listFn: func(context.Context, string) ([]model.Gadget, error) {
			return []model.Gadget{}, nil
		}}
		ctx, rec := newCtx(http.MethodGet, "/api/gadgets?status=Bogus", "")
		require.NoError(t, ListHandler(svc)(ctx))
		body := decode(t, rec)
		require.EqualValues(t, 0, body["count"])
		require.Equal(t, []any{}, body["gadgets"])
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &stubService{listFn: func(context.Context, string) ([]model.Gadget, error) {
			return nil, errors.New("db")
		}}
		ctx, rec := newCtx(http.MethodGet, "/api/gadgets", "")
		require.NoError(t, ListHandler(svc)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "GADGETS_FETCH_ERROR", decode(t, rec)["code"])
	})
}

func TestGetHandler(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &stubService{getFn: func(context.Context, string) (*model.Gadget, error) {
			return nil, apperr.ErrGadgetNotFound
		}}
		ctx, rec := newCtx(http.MethodGet, "/", "")
		require.NoError(t, GetHandler(svc)(withID(ctx, "nope")))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "GADGET_NOT_FOUND", decode(t, rec)["code"])
	})

	t.Run("unexpected error", func(t *testing.T) {
		svc := &stubService{getFn: func(context.Context, string) (*model.Gadget, error) {
			return nil, errors.New("db")
		}}
		ctx, rec := newCtx(http.MethodGet, "/", "")
		require.NoError(t, GetHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, "GADGET_FETCH_ERROR", decode(t, rec)["code"])
	})

	t.Run("success", func(t *testing.T) {
		svc := &stubService{getFn: func(_ context.Context, id string) (*model.Gadget, error) {
			require.Equal(t, gadgetID, id)
			return sample(), nil
		}}
		ctx, rec := newCtx(http.MethodGet, "/", "")
		require.NoError(t, GetHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		require.Equal(t, "Gadget retrieved successfully", body["message"])
		require.Equal(t, gadgetID, body["gadget"].(map[string]any)["id"])
	})
}

func TestCreateHandler(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		ctx, rec := newCtx(http.MethodPost, "/", `{"name":`)
		require.NoError(t, CreateHandler(&stubService{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "INVALID_REQUEST_BODY", decode(t, rec)["code"])
	})

	t.Run("missing name", func(t *testing.T) {
		ctx, rec := newCtx(http.MethodPost, "/", `{"description":"x"}`)
		require.NoError(t, CreateHandler(&stubService{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "MISSING_NAME", decode(t, rec)["code"])
	})

	t.Run("codename exhaustion", func(t *testing.T) {
		svc := &stubService{createFn: func(context.Context, string, string) (*model.Gadget, error) {
			return nil, apperr.ErrCodenameGeneration
		}}
		ctx, rec := newCtx(http.MethodPost, "/", `{"name":"Gum"}`)
		require.NoError(t, CreateHandler(svc)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "CODENAME_GENERATION_ERROR", decode(t, rec)["code"])
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &stubService{createFn: func(context.Context, string, string) (*model.Gadget, error) {
			return nil, errors.New("db")
		}}
		ctx, rec := newCtx(http.MethodPost, "/", `{"name":"Gum"}`)
		require.NoError(t, CreateHandler(svc)(ctx))
		require.Equal(t, "GADGET_CREATE_ERROR", decode(t, rec)["code"])
	})

	t.Run("success", func(t *testing.T) {
		svc := &stubService{createFn: func(_ context.Context, name, description string) (*model.Gadget, error) {
			require.Equal(t, "Laser Watch", name)
			require.Equal(t, "", description)
			return sample(), nil
		}}
		ctx, rec := newCtx(http.MethodPost, "/", `{"name":"Laser Watch"}`)
		require.NoError(t, CreateHandler(svc)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		body := decode(t, rec)
		require.Equal(t, "Gadget created successfully", body["message"])
		require.Equal(t, "Available", body["gadget"].(map[string]any)["status"])
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("maps body to patch", func(t *testing.T) {
		var got model.GadgetPatch
		svc := &stubService{updateFn: func(_ context.Context, id string, patch model.GadgetPatch) (*model.Gadget, error) {
			require.Equal(t, gadgetID, id)
			got = patch
			g := sample()
			g.Status = model.StatusDeployed
			return g, nil
		}}
		ctx, rec := newCtx(http.MethodPatch, "/", `{"status":"Deployed"}`)
		require.NoError(t, UpdateHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Nil(t, got.Name)
		require.Nil(t, got.Description)
		require.NotNil(t, got.Status)
		require.Equal(t, model.StatusDeployed, *got.Status)
		require.Equal(t, "Gadget updated successfully", decode(t, rec)["message"])
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := &stubService{updateFn: func(context.Context, string, model.GadgetPatch) (*model.Gadget, error) {
			return nil, apperr.ErrInvalidStatus.With("validStatuses", model.GadgetStatuses())
		}}
		ctx, rec := newCtx(http.MethodPatch, "/", `{"status":"Lost"}`)
		require.NoError(t, UpdateHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		require.Equal(t, "INVALID_STATUS", body["code"])
		require.Equal(t, []any{"Available", "Deployed", "Destroyed", "Decommissioned"}, body["validStatuses"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := &stubService{updateFn: func(context.Context, string, model.GadgetPatch) (*model.Gadget, error) {
			return nil, apperr.ErrGadgetNotFound
		}}
		ctx, rec := newCtx(http.MethodPatch, "/", `{"name":"x"}`)
		require.NoError(t, UpdateHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &stubService{updateFn: func(context.Context, string, model.GadgetPatch) (*model.Gadget, error) {
			return nil, errors.New("db")
		}}
		ctx, rec := newCtx(http.MethodPatch, "/", `{"name":"x"}`)
		require.NoError(t, UpdateHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, "GADGET_UPDATE_ERROR", decode(t, rec)["code"])
	})
}

func TestDecommissionHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		svc := &stubService{decommissionFn: func(context.Context, string) (*model.Gadget, error) {
			g := sample()
			g.Status = model.StatusDecommissioned
			g.DecommissionedAt = &at
			return g, nil
		}}
		ctx, rec := newCtx(http.MethodDelete, "/", "")
		require.NoError(t, DecommissionHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		require.Equal(t, "Gadget decommissioned successfully", body["message"])
		g := body["gadget"].(map[string]any)
		require.Equal(t, "The Silent Blue Fox - Decommissioned", g["probabilityText"])
		require.Equal(t, "2024-06-01T12:00:00Z", g["decommissionedAt"])
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &stubService{decommissionFn: func(context.Context, string) (*model.Gadget, error) {
			return nil, errors.New("db")
		}}
		ctx, rec := newCtx(http.MethodDelete, "/", "")
		require.NoError(t, DecommissionHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, "GADGET_DELETE_ERROR", decode(t, rec)["code"])
	})
}

func TestSelfDestructHandler(t *testing.T) {
	t.Run("initiate without body", func(t *testing.T) {
		svc := &stubService{selfDestructFn: func(_ context.Context, id, code string) (*service.SelfDestructResult, error) {
			require.Equal(t, gadgetID, id)
			require.Empty(t, code)
			return &service.SelfDestructResult{Gadget: sample(), ConfirmationCode: "AB12-CD34"}, nil
		}}
		ctx, rec := newCtx(http.MethodPost, "/", "")
		require.NoError(t, SelfDestructHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		require.Equal(t, "Self-destruct sequence initiated. Confirmation code generated.", body["message"])
		require.Equal(t, "AB12-CD34", body["confirmationCode"])
		require.Equal(t, selfDestructWarning, body["warning"])
		require.Equal(t, selfDestructInstructions, body["instructions"])
	})

	t.Run("not allowed in current status", func(t *testing.T) {
		svc := &stubService{selfDestructFn: func(context.Context, string, string) (*service.SelfDestructResult, error) {
			return nil, apperr.ErrInvalidStatusForSelfDestruct.
				With("currentStatus", model.StatusDestroyed).
				With("allowedStatuses", model.SelfDestructStatuses())
		}}
		ctx, rec := newCtx(http.MethodPost, "/", "{}")
		require.NoError(t, SelfDestructHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode(t, rec)
		require.Equal(t, "INVALID_STATUS_FOR_SELF_DESTRUCT", body["code"])
		require.Equal(t, "Destroyed", body["currentStatus"])
	})

	t.Run("wrong code", func(t *testing.T) {
		svc := &stubService{selfDestructFn: func(_ context.Context, _, code string) (*service.SelfDestructResult, error) {
			require.Equal(t, "ZZZZ-ZZZZ", code)
			return nil, apperr.ErrInvalidConfirmationCode
		}}
		ctx, rec := newCtx(http.MethodPost, "/", `{"confirmationCode":"ZZZZ-ZZZZ"}`)
		require.NoError(t, SelfDestructHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, "INVALID_CONFIRMATION_CODE", decode(t, rec)["code"])
	})

	t.Run("complete", func(t *testing.T) {
		at := time.Date(2024, 6, 2, 8, 30, 0, 0, time.UTC)
		svc := &stubService{selfDestructFn: func(context.Context, string, string) (*service.SelfDestructResult, error) {
			g := sample()
			g.Status = model.StatusDestroyed
			g.SelfDestructCode = nil
			g.SelfDestructAt = &at
			return &service.SelfDestructResult{Gadget: g, Destroyed: true}, nil
		}}
		ctx, rec := newCtx(http.MethodPost, "/", `{"confirmationCode":"AB12-CD34"}`)
		require.NoError(t, SelfDestructHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		require.Equal(t, "💥 Self-destruct sequence completed successfully", body["message"])
		require.Equal(t, "2024-06-02T08:30:00Z", body["timestamp"])
		g := body["gadget"].(map[string]any)
		require.Equal(t, "The Silent Blue Fox - DESTROYED", g["probabilityText"])
		require.Equal(t, "Destroyed", g["status"])
	})

	t.Run("unexpected error", func(t *testing.T) {
		svc := &stubService{selfDestructFn: func(context.Context, string, string) (*service.SelfDestructResult, error) {
			return nil, errors.New("db")
		}}
		ctx, rec := newCtx(http.MethodPost, "/", "")
		require.NoError(t, SelfDestructHandler(svc)(withID(ctx, gadgetID)))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "SELF_DESTRUCT_ERROR", decode(t, rec)["code"])
	})
}
