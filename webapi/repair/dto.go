package repair

import (
	"github.com/finpal/finpal/pkg/dto"
	"github.com/finpal/finpal/pkg/service/repair"
)

// CheckResponse reports how many transactions need fixing, with the rows
// themselves for display.
type CheckResponse struct {
	TransactionsToFix int                       `json:"transactions_to_fix"`
	Transactions      []*dto.FlaggedTransaction `json:"transactions"`
}

// ExecuteRequest selects the repair action to run.
type ExecuteRequest struct {
	Action string `json:"action" validate:"required"`
}

// ExecuteResponse wraps the aggregate result of a repair run.
type ExecuteResponse struct {
	Success bool           `json:"success"`
	Result  *repair.Result `json:"result"`
}
