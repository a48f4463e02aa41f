package transaction

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

func TestCreate_GuardRejectsCreditCardExpense(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	cardID := uuid.New()

	err := repo.Create(context.Background(), dto.TransactionCreate{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		Type:         "expense",
		Amount:       decimal.NewFromInt(10),
		Date:         time.Now(),
		CreditCardID: &cardID,
	})
	require.ErrorIs(t, err, domain.ErrCreditCardExpense)
	// The guard fires before any SQL is issued.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Income(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectExec(`INSERT INTO "transactions"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), dto.TransactionCreate{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Type:   "income",
		Amount: decimal.NewFromInt(10),
		Date:   time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()

	mock.ExpectExec(`DELETE FROM "transactions"`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), id))

	mock.ExpectExec(`DELETE FROM "transactions"`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "transactions"`).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListFlagged_MapsJoinedRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	txID := uuid.New()
	userID := uuid.New()
	cardID := uuid.New()
	cardOwner := uuid.New()
	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "type", "amount", "date", "description",
		"category_id", "account_id", "credit_card_id", "created_at",
		"card_name", "card_user_id",
	}).AddRow(
		txID, userID, "expense", "150.00", date, "Market",
		nil, nil, cardID, date, "Nubank", cardOwner,
	)
	mock.ExpectQuery(`SELECT t\.\*, c\.name AS card_name, c\.user_id AS card_user_id`).
		WillReturnRows(rows)

	flagged, err := repo.ListFlagged(context.Background())
	require.NoError(t, err)
	require.Len(t, flagged, 1)
	ft := flagged[0]
	assert.Equal(t, txID, ft.ID)
	assert.Equal(t, userID, ft.UserID)
	assert.Equal(t, "expense", ft.Type)
	assert.True(t, ft.Amount.Equal(decimal.RequireFromString("150.00")))
	require.NotNil(t, ft.CreditCardID)
	assert.Equal(t, cardID, *ft.CreditCardID)
	assert.Equal(t, "Nubank", ft.CardName)
	assert.Equal(t, cardOwner, ft.CardUserID)
}

func TestListFlagged_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT t\.\*, c\.name AS card_name, c\.user_id AS card_user_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	flagged, err := repo.ListFlagged(context.Background())
	require.NoError(t, err)
	assert.Empty(t, flagged)
}

func TestListLinkedCardIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	first := uuid.New()
	second := uuid.New()
	mock.ExpectQuery(`SELECT DISTINCT "credit_card_id" FROM "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"credit_card_id"}).
			AddRow(first).AddRow(second))

	ids, err := repo.ListLinkedCardIDs(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first, second}, ids)
}
