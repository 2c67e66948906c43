package catalog

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
)

func TestRepository_ListServices_ForUpdateInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id IN ($1,$2) AND active = $3 ORDER BY id ASC FOR UPDATE")).
		WithArgs(int64(1), int64(2), true).
		WillReturnRows(mock.NewRows(serviceColumns).
			AddRow(int64(1), "여성 커트", int64(4), "헤어", int64(30000), 60, true, []byte(`[{"name":"롱","price":5000}]`), now, now).
			AddRow(int64(2), "젤 네일", nil, "", int64(45000), 60, true, []byte(`[]`), now, now))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	services, err := repo.ListServices(ctx, ServiceFilter{IDs: []int64{1, 2}, ActiveOnly: true, ForUpdate: true})
	require.NoError(t, err)
	require.Len(t, services, 2)

	require.NotNil(t, services[0].CategoryID)
	assert.Equal(t, int64(4), *services[0].CategoryID)
	assert.Equal(t, []domain.PriceOption{{Name: "롱", Price: 5000}}, services[0].PriceOptions)
	assert.Nil(t, services[1].CategoryID)
	assert.Empty(t, services[1].PriceOptions)

	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListServices_NoLockOutsideTransaction(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT " + strings.Join(serviceColumns, ", ") + " FROM services ORDER BY id ASC").
		WillReturnRows(mock.NewRows(serviceColumns))

	_, err = repo.ListServices(context.Background(), ServiceFilter{ForUpdate: true})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateService_EncodesEmptyOptions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO services").
		WithArgs("커트", nil, "헤어", int64(30000), 60, true, []byte(`[]`)).
		WillReturnRows(mock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))

	s, err := repo.CreateService(context.Background(), &domain.Service{
		Name: "커트", Category: "헤어", BasePrice: 30000, DurationMinutes: 60, Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), s.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateServicePriceAndDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE services SET base_price = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(int64(31000), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateServicePrice(ctx, 1, 31000))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM services WHERE id = $1")).
		WithArgs(int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteService(ctx, 77), ErrServiceNotFound)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteCategory(ctx, 3))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM categories ORDER BY sort_order ASC, id ASC")).
		WillReturnRows(mock.NewRows(categoryColumns).
			AddRow(int64(1), "헤어", "#ff8800", 1, true, now, now).
			AddRow(int64(2), "네일", "#00aaff", 2, false, now, now))

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "헤어", categories[0].Name)
	assert.False(t, categories[1].Active)
	require.NoError(t, mock.ExpectationsWereMet())
}
