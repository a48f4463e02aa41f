package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finpal/finpal/infra/repository/model"
	"github.com/finpal/finpal/pkg/domain"
)

func TestTransactionBeforeCreate(t *testing.T) {
	cardID := uuid.New()

	tests := []struct {
		name         string
		txType       string
		creditCardID *uuid.UUID
		wantErr      bool
	}{
		{"expense with card is rejected", "expense", &cardID, true},
		{"expense without card passes", "expense", nil, false},
		{"income with card passes", "income", &cardID, false},
		{"income without card passes", "income", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &model.Transaction{
				ID:           uuid.New(),
				UserID:       uuid.New(),
				Type:         tt.txType,
				CreditCardID: tt.creditCardID,
			}
			err := tx.BeforeCreate(nil)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrCreditCardExpense)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuardMessageNamesThePurchaseEndpoint(t *testing.T) {
	cardID := uuid.New()
	tx := &model.Transaction{Type: "expense", CreditCardID: &cardID}

	err := tx.BeforeCreate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use the purchase API")
}
