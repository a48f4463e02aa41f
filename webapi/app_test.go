package webapi_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpal/finpal/internal/fixtures"
	"github.com/finpal/finpal/pkg/config"
	authsvc "github.com/finpal/finpal/pkg/service/auth"
	"github.com/finpal/finpal/pkg/service/billing"
	repairsvc "github.com/finpal/finpal/pkg/service/repair"
	txsvc "github.com/finpal/finpal/pkg/service/transaction"
	"github.com/finpal/finpal/webapi"
)

func newApp() *fiber.App {
	logger := slog.Default()
	uow := fixtures.NewUnitOfWork()
	billingSvc := billing.NewService(uow, logger)
	repairSvc := repairsvc.NewService(uow, billingSvc, billingSvc, logger)
	transactionSvc := txsvc.NewService(uow, billingSvc, logger)
	cfg := &config.AppConfig{Jwt: config.JwtConfig{Secret: "test-secret"}}

	return webapi.NewApp(repairSvc, transactionSvc, authsvc.NewService(logger), cfg)
}

func TestApp_PreflightAnswered(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(fiber.MethodOptions, "/transactions", nil)
	req.Header.Set("Origin", "https://integration.example.com")
	req.Header.Set("Access-Control-Request-Method", fiber.MethodPost)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Contains(t, resp.Header.Get(fiber.HeaderAccessControlAllowMethods), fiber.MethodPost)
}

func TestApp_ResponsesCarryCORSHeaders(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://integration.example.com")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}

func TestApp_ValidationFailureIsBadRequest(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(fiber.MethodPost, "/transactions",
		strings.NewReader(`{"type":"expense","amount":10}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	// The handler's problem response must survive the app error handler.
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/problem+json")
}

func TestApp_HealthRoute(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
