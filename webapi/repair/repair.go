// Package repair exposes the operator-facing consistency endpoints: a
// read-only check and the batch repair trigger. Both are admin-only.
package repair

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"

	"github.com/finpal/finpal/pkg/config"
	"github.com/finpal/finpal/pkg/middleware"
	authsvc "github.com/finpal/finpal/pkg/service/auth"
	repairsvc "github.com/finpal/finpal/pkg/service/repair"
	"github.com/finpal/finpal/webapi/common"
)

// Routes registers the repair endpoints.
//
// Routes:
//   - GET  /repair : Report transactions that need migrating, without mutating anything.
//   - POST /repair : Run the batch repair; body {"action": "fix"}.
func Routes(app *fiber.App, repairSvc *repairsvc.Service, authSvc *authsvc.Service, cfg *config.AppConfig) {
	app.Get("/repair", middleware.JwtProtected(cfg.Jwt), Check(repairSvc, authSvc))
	app.Post("/repair", middleware.JwtProtected(cfg.Jwt), Execute(repairSvc, authSvc))
}

// requireAdmin extracts the validated token and enforces the admin
// capability. It writes the error response itself and returns nil when the
// caller may not proceed.
func requireAdmin(c *fiber.Ctx, authSvc *authsvc.Service) *jwt.Token {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		_ = common.ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", "missing user context")
		return nil
	}
	if !authSvc.IsAdmin(token) {
		_ = common.ErrorResponseJSON(c, fiber.StatusForbidden, "Forbidden", "admin access required")
		return nil
	}
	return token
}

// Check returns a handler running the consistency scanner in reporting
// mode.
// @Summary Check for mis-recorded credit card transactions
// @Tags repair
// @Produce json
// @Success 200 {object} common.Response "Check complete"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /repair [get]
// @Security Bearer
func Check(repairSvc *repairsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if requireAdmin(c, authSvc) == nil {
			return nil
		}
		flagged, err := repairSvc.Check(c.Context())
		if err != nil {
			log.Errorf("Repair check failed: %v", err)
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Repair check failed", err.Error())
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Check complete", CheckResponse{
			TransactionsToFix: len(flagged),
			Transactions:      flagged,
		})
	}
}

// Execute returns a handler running the batch repair. Per-row failures are
// reported inside the result, never as an HTTP error.
// @Summary Repair mis-recorded credit card transactions
// @Tags repair
// @Accept json
// @Produce json
// @Param request body ExecuteRequest true "Repair action"
// @Success 200 {object} common.Response "Repair complete"
// @Failure 400 {object} common.ProblemDetails "Unrecognized action"
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 403 {object} common.ProblemDetails "Forbidden"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /repair [post]
// @Security Bearer
func Execute(repairSvc *repairsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if requireAdmin(c, authSvc) == nil {
			return nil
		}
		input, _ := common.BindAndValidate[ExecuteRequest](c)
		if input == nil {
			// The 400 problem response is already written; returning the
			// error would hand it to the app error handler, which answers 500.
			return nil
		}
		if input.Action != "fix" {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Unrecognized action", input.Action)
		}
		result, err := repairSvc.Repair(c.Context())
		if err != nil {
			log.Errorf("Repair run failed: %v", err)
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Repair run failed", err.Error())
		}
		log.Infof("Repair run complete: fixed=%d created=%d errors=%d",
			result.FixedTransactions, result.CreatedPurchases, len(result.Errors))
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Repair complete", ExecuteResponse{
			Success: true,
			Result:  result,
		})
	}
}
