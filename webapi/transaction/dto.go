package transaction

// CreateTransactionRequest describes a new financial event submitted by an
// external integration. Category may be given by id or by name; when both
// are absent the user's default category is resolved.
type CreateTransactionRequest struct {
	UserID       string  `json:"user_id" validate:"required,uuid4"`
	Type         string  `json:"type" validate:"required,oneof=income expense"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Date         string  `json:"date,omitempty"`
	Description  string  `json:"description,omitempty"`
	CategoryID   string  `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	Category     string  `json:"category,omitempty"`
	GoalID       string  `json:"goal_id,omitempty" validate:"omitempty,uuid4"`
	AccountID    string  `json:"account_id,omitempty" validate:"omitempty,uuid4"`
	CreditCardID string  `json:"credit_card_id,omitempty" validate:"omitempty,uuid4"`
}

// CreateTransactionResponse reports which store the event landed in.
type CreateTransactionResponse struct {
	Success bool           `json:"success"`
	Type    string         `json:"type"`
	Data    map[string]any `json:"data"`
}
