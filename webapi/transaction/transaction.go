// Package transaction exposes the integration-facing creation endpoint.
// Credit-card expenses are routed to the purchase store; everything else
// goes through the generic transaction store and its insertion guard.
package transaction

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finpal/finpal/pkg/domain"
	txsvc "github.com/finpal/finpal/pkg/service/transaction"
	"github.com/finpal/finpal/webapi/common"
)

// Routes registers the creation endpoint. Fiber answers other methods on
// the path with 405; preflight requests are handled by the app-level CORS
// middleware.
func Routes(app *fiber.App, svc *txsvc.Service) {
	app.Post("/transactions", Create(svc))
}

// Create returns a handler recording a new financial event.
// @Summary Create a transaction or credit card purchase
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Financial event"
// @Success 201 {object} CreateTransactionResponse "Created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 403 {object} common.ProblemDetails "Card ownership mismatch"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /transactions [post]
func Create(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, _ := common.BindAndValidate[CreateTransactionRequest](c)
		if input == nil {
			// The 400 problem response is already written; returning the
			// error would hand it to the app error handler, which answers 500.
			return nil
		}
		in, err := mapRequestToInput(input)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request", err.Error())
		}
		result, err := svc.Create(c.Context(), *in)
		if err != nil {
			log.Errorf("Failed to create transaction for user %s: %v", input.UserID, err)
			return common.ProblemDetailsJSON(c, "Failed to create transaction", err)
		}

		resp := CreateTransactionResponse{Success: true, Type: result.Kind}
		switch result.Kind {
		case txsvc.KindCreditCardPurchase:
			resp.Data = map[string]any{"purchase_id": result.PurchaseID}
		default:
			resp.Data = map[string]any{"transaction_id": result.TransactionID}
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

func mapRequestToInput(req *CreateTransactionRequest) (*txsvc.CreateInput, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, err
	}
	in := &txsvc.CreateInput{
		UserID:       userID,
		Type:         domain.TransactionType(req.Type),
		Amount:       decimal.NewFromFloat(req.Amount),
		Description:  req.Description,
		CategoryName: req.Category,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, err
		}
		in.Date = date
	}
	if in.CategoryID, err = parseOptionalID(req.CategoryID); err != nil {
		return nil, err
	}
	if in.AccountID, err = parseOptionalID(req.AccountID); err != nil {
		return nil, err
	}
	if in.CreditCardID, err = parseOptionalID(req.CreditCardID); err != nil {
		return nil, err
	}
	if in.GoalID, err = parseOptionalID(req.GoalID); err != nil {
		return nil, err
	}
	return in, nil
}

// parseDate accepts both date-only and RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func parseOptionalID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
