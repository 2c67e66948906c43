package customer

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

func TestRepository_CreateAndGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	now := time.Date(2024, 12, 18, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO customers (name,phone,email,memo) VALUES ($1,$2,$3,$4) RETURNING id, created_at, updated_at")).
		WillReturnRows(mock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(3), now, now))

	created, err := repo.Create(ctx, &domain.Customer{Name: "김민지", Phone: "010-1111-2222", Memo: ptr.Ptr("단골")})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, phone, email, memo, created_at, updated_at FROM customers WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(mock.NewRows(columns).AddRow(int64(3), "김민지", "010-1111-2222", nil, "단골", now, now))

	got, err := repo.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "김민지", got.Name)
	assert.Nil(t, got.Email)
	require.NotNil(t, got.Memo)
	assert.Equal(t, "단골", *got.Memo)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListSearch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (name ILIKE $1 OR phone LIKE $2) ORDER BY name ASC, id ASC")).
		WithArgs("%1111%", "%1111%").
		WillReturnRows(mock.NewRows(columns))

	got, err := repo.List(context.Background(), " 1111 ")
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("UPDATE customers").WillReturnError(sql.ErrNoRows)
	_, err = repo.Update(ctx, &domain.Customer{ID: 5, Name: "x", Phone: "010-1111-2222"})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	mock.ExpectExec("DELETE FROM customers").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(ctx, 5), ErrCustomerNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
