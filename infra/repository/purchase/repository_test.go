package purchase

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finpal/finpal/pkg/domain"
	"github.com/finpal/finpal/pkg/dto"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	txID := uuid.New()

	mock.ExpectExec(`INSERT INTO "purchases"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), dto.PurchaseCreate{
		ID:                uuid.New(),
		CardID:            uuid.New(),
		Description:       "Market",
		Amount:            decimal.NewFromInt(300),
		PurchaseDate:      time.Now(),
		Installments:      3,
		InstallmentAmount: decimal.NewFromInt(100),
		IsInstallment:     true,
		TransactionID:     &txID,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateTransactionID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	txID := uuid.New()

	mock.ExpectExec(`INSERT INTO "purchases"`).
		WillReturnError(gorm.ErrDuplicatedKey)

	err := repo.Create(context.Background(), dto.PurchaseCreate{
		ID:                uuid.New(),
		CardID:            uuid.New(),
		Description:       "Market",
		Amount:            decimal.NewFromInt(300),
		PurchaseDate:      time.Now(),
		Installments:      3,
		InstallmentAmount: decimal.NewFromInt(100),
		IsInstallment:     true,
		TransactionID:     &txID,
	})
	require.Error(t, err)
}

func TestGetByTransactionID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()
	txID := uuid.New()
	cardID := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "card_id", "description", "amount", "purchase_date",
		"installments", "installment_amount", "is_installment",
		"category_id", "transaction_id", "created_at",
	}).AddRow(
		id, cardID, "Market", "150.00", time.Now(),
		1, "150.00", false, nil, txID, time.Now(),
	)
	mock.ExpectQuery(`SELECT \* FROM "purchases" WHERE transaction_id = \$1`).
		WithArgs(txID, 1).
		WillReturnRows(rows)

	p, err := repo.GetByTransactionID(context.Background(), txID)
	require.NoError(t, err)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, cardID, p.CardID)
	require.NotNil(t, p.TransactionID)
	assert.Equal(t, txID, *p.TransactionID)
}

func TestGetByTransactionID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "purchases"`).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetByTransactionID(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
