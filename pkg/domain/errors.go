package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when the caller carries no valid identity
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the caller is not allowed to perform an action
	ErrForbidden = errors.New("forbidden")
	// ErrCardOwnership is returned when a credit card does not belong to the
	// user a request claims to act for
	ErrCardOwnership = errors.New("credit card does not belong to user")
	// ErrNoCategory is returned when a transaction has no category and none
	// can be resolved as a default
	ErrNoCategory = errors.New("no category provided and no default category found")
	// ErrCreditCardExpense is returned by the insertion guard when an expense
	// carrying a credit card reference is written to the generic transaction
	// store. Such expenses must go through the credit-card purchase API.
	ErrCreditCardExpense = errors.New(
		"credit card expenses must be created as purchases, not transactions; use the purchase API")
)
