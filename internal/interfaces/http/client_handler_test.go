package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallsco/firmbooks-api/internal/application/billing"
	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
	apphttp "github.com/wallsco/firmbooks-api/internal/interfaces/http"
	"github.com/wallsco/firmbooks-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar el handler de clientes sin base de datos
// ──────────────────────────────────────────────────────────────────────────────

type stubClientRepo struct {
	clients map[string]*entity.Client
}

func (r *stubClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *stubClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *stubClientRepo) List(onlyActive bool) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if onlyActive && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
func (r *stubClientRepo) Update(c *entity.Client) error       { r.clients[c.ID] = c; return nil }
func (r *stubClientRepo) SetActive(id string, set bool) error { r.clients[id].Active = set; return nil }

type stubBillRepo struct {
	amounts map[string][]decimal.Decimal
}

func (r *stubBillRepo) Create(*entity.ClientBill) error { return nil }
func (r *stubBillRepo) ListByClient(string) ([]*entity.ClientBill, error) {
	return nil, nil
}
func (r *stubBillRepo) ListByDateRange(time.Time, time.Time) ([]*entity.ClientBill, error) {
	return nil, nil
}
func (r *stubBillRepo) AmountsByClient(clientID string) ([]decimal.Decimal, error) {
	return r.amounts[clientID], nil
}
func (r *stubBillRepo) AmountsByDateRange(*time.Time, *time.Time) ([]decimal.Decimal, error) {
	return nil, nil
}

type stubPaymentRepo struct {
	amounts map[string][]decimal.Decimal
}

func (r *stubPaymentRepo) Create(*entity.ClientPayment) error { return nil }
func (r *stubPaymentRepo) ListByClient(string) ([]*entity.ClientPayment, error) {
	return nil, nil
}
func (r *stubPaymentRepo) AmountsByClient(clientID string) ([]decimal.Decimal, error) {
	return r.amounts[clientID], nil
}
func (r *stubPaymentRepo) AmountsByDateRange(*time.Time, *time.Time) ([]decimal.Decimal, error) {
	return nil, nil
}
func (r *stubPaymentRepo) AmountsByCollector(string) ([]repository.CollectedAmount, error) {
	return nil, nil
}

func buildClientApp() *fiber.App {
	clientRepo := &stubClientRepo{clients: map[string]*entity.Client{
		"c1": {ID: "c1", Name: "Constructora Andina", Active: true, CreditLimit: decimal.Zero},
	}}
	billRepo := &stubBillRepo{amounts: map[string][]decimal.Decimal{
		"c1": {decimal.NewFromInt(900)},
	}}
	paymentRepo := &stubPaymentRepo{amounts: map[string][]decimal.Decimal{
		"c1": {decimal.NewFromInt(250)},
	}}

	clientUC := billing.NewClientUseCase(clientRepo)
	dueUC := billing.NewDueUseCase(clientRepo, billRepo, paymentRepo, logger.Nop())
	handler := apphttp.NewClientHandler(clientUC, nil, dueUC)

	app := fiber.New()
	app.Post("/api/clients", handler.Create)
	app.Get("/api/clients/:id", handler.Get)
	app.Get("/api/clients/:id/due", handler.Due)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestClientHandler_Create(t *testing.T) {
	app := buildClientApp()

	resp := doJSON(t, app, http.MethodPost, "/api/clients", dto.CreateClientRequest{
		Name:  "Ferretería El Puente",
		Phone: "3010000000",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created dto.ClientResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ferretería El Puente", created.Name)
	assert.True(t, created.Active)
}

func TestClientHandler_Create_SinNombre(t *testing.T) {
	app := buildClientApp()

	resp := doJSON(t, app, http.MethodPost, "/api/clients", map[string]string{"phone": "300"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestClientHandler_Get_NoEncontrado(t *testing.T) {
	app := buildClientApp()

	resp := doJSON(t, app, http.MethodGet, "/api/clients/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestClientHandler_Due(t *testing.T) {
	app := buildClientApp()

	resp := doJSON(t, app, http.MethodGet, "/api/clients/c1/due", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var due dto.ClientDueDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&due))
	assert.Equal(t, "c1", due.ClientID)
	assert.True(t, due.TotalBilled.Equal(decimal.NewFromInt(900)))
	assert.True(t, due.TotalPaid.Equal(decimal.NewFromInt(250)))
	assert.True(t, due.Due.Equal(decimal.NewFromInt(650)))
	assert.Empty(t, due.Degraded)
}
