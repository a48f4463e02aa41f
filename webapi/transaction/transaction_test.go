package transaction_test

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpal/finpal/internal/fixtures"
	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/service/billing"
	txsvc "github.com/finpal/finpal/pkg/service/transaction"
	transactionapi "github.com/finpal/finpal/webapi/transaction"
)

func newTestApp(uow *fixtures.UnitOfWork) *fiber.App {
	logger := slog.Default()
	billingSvc := billing.NewService(uow, logger)
	svc := txsvc.NewService(uow, billingSvc, logger)

	app := fiber.New()
	transactionapi.Routes(app, svc)
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCreate_CreditCardPurchase(t *testing.T) {
	uow := fixtures.NewUnitOfWork()
	userID := uuid.New()
	cardID := uuid.New()
	uow.AddCard(&domain.Card{ID: cardID, UserID: userID, Name: "Nubank"})
	app := newTestApp(uow)

	resp := postJSON(t, app, fmt.Sprintf(
		`{"user_id":"%s","type":"expense","amount":150.5,"date":"2025-09-14","description":"Market","credit_card_id":"%s"}`,
		userID, cardID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeResponse(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "credit_card_purchase", body["type"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["purchase_id"])

	require.Len(t, uow.PurchaseRows, 1)
	assert.Empty(t, uow.TransactionRows)
}

func TestCreate_CardOwnershipMismatch(t *testing.T) {
	uow := fixtures.NewUnitOfWork()
	cardID := uuid.New()
	uow.AddCard(&domain.Card{ID: cardID, UserID: uuid.New(), Name: "Visa"})
	app := newTestApp(uow)

	resp := postJSON(t, app, fmt.Sprintf(
		`{"user_id":"%s","type":"expense","amount":10,"credit_card_id":"%s"}`,
		uuid.New(), cardID))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Empty(t, uow.PurchaseRows)
}

func TestCreate_RegularTransaction(t *testing.T) {
	uow := fixtures.NewUnitOfWork()
	userID := uuid.New()
	uow.CategoryRows = append(uow.CategoryRows, &domain.Category{
		ID: uuid.New(), UserID: userID, Name: "Outros",
		Type: domain.TransactionTypeExpense, IsDefault: true,
	})
	app := newTestApp(uow)

	resp := postJSON(t, app, fmt.Sprintf(
		`{"user_id":"%s","type":"expense","amount":30}`, userID))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeResponse(t, resp)
	assert.Equal(t, "transaction", body["type"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["transaction_id"])
	require.Len(t, uow.TransactionRows, 1)
}

func TestCreate_NoResolvableCategory(t *testing.T) {
	app := newTestApp(fixtures.NewUnitOfWork())

	resp := postJSON(t, app, fmt.Sprintf(
		`{"user_id":"%s","type":"expense","amount":30}`, uuid.New()))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreate_ValidationFailures(t *testing.T) {
	app := newTestApp(fixtures.NewUnitOfWork())

	tests := []struct {
		name string
		body string
	}{
		{"missing user_id", `{"type":"expense","amount":10}`},
		{"bad user_id", `{"user_id":"not-a-uuid","type":"expense","amount":10}`},
		{"bad type", fmt.Sprintf(`{"user_id":"%s","type":"transfer","amount":10}`, uuid.New())},
		{"zero amount", fmt.Sprintf(`{"user_id":"%s","type":"expense","amount":0}`, uuid.New())},
		{"negative amount", fmt.Sprintf(`{"user_id":"%s","type":"expense","amount":-5}`, uuid.New())},
		{"bad date", fmt.Sprintf(`{"user_id":"%s","type":"expense","amount":10,"date":"14/09/2025"}`, uuid.New())},
		{"not json", `amount=10`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreate_MethodNotAllowed(t *testing.T) {
	app := newTestApp(fixtures.NewUnitOfWork())

	req := httptest.NewRequest(fiber.MethodGet, "/transactions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}
