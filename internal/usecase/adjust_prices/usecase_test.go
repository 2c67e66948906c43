package adjust_prices

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeServices struct {
	services  []*domain.Service
	filter    catalogRepo.ServiceFilter
	prices    map[int64]int64
	failOnID  int64
	committed bool
}

func (f *fakeServices) ListServices(_ context.Context, filter catalogRepo.ServiceFilter) ([]*domain.Service, error) {
	f.filter = filter
	out := make([]*domain.Service, 0)
	for _, s := range f.services {
		if filter.ActiveOnly && !s.Active {
			continue
		}
		if len(filter.IDs) > 0 && !contains(filter.IDs, s.ID) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServices) UpdateServicePrice(_ context.Context, id int64, price int64) error {
	if id == f.failOnID {
		return errors.New("deadlock detected")
	}
	f.prices[id] = price
	return nil
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// fakeTx откатывает изменения цен, если fn вернул ошибку
type fakeTx struct {
	repo *fakeServices
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := make(map[int64]int64, len(f.repo.prices))
	for k, v := range f.repo.prices {
		snapshot[k] = v
	}
	if err := fn(ctx); err != nil {
		f.repo.prices = snapshot
		return err
	}
	f.repo.committed = true
	return nil
}

func newFixture() (*UseCase, *fakeServices) {
	repo := &fakeServices{
		services: []*domain.Service{
			{ID: 1, Name: "여성 커트", BasePrice: 30000, Active: true},
			{ID: 2, Name: "전체 염색", BasePrice: 80000, Active: true},
			{ID: 3, Name: "단종 시술", BasePrice: 500, Active: false},
		},
		prices: map[int64]int64{},
	}
	return NewUseCase(repo, &fakeTx{repo: repo}, nopLogger{}), repo
}

func TestUseCase_FixedIncreaseOnSelected(t *testing.T) {
	uc, repo := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceIDs: []int64{1},
		Type:       "fixed",
		Value:      1000,
		Direction:  "increase",
	})
	require.NoError(t, err)

	require.Len(t, resp.Changes, 1)
	assert.Equal(t, Change{ServiceID: 1, Name: "여성 커트", Before: 30000, After: 31000}, resp.Changes[0])
	assert.Equal(t, map[int64]int64{1: 31000}, repo.prices)
	assert.True(t, repo.filter.ForUpdate)
	assert.True(t, repo.committed)
}

func TestUseCase_PercentDecreaseOnAllActive(t *testing.T) {
	uc, repo := newFixture()

	resp, err := uc.Execute(context.Background(), &Request{All: true, Type: "percent", Value: 10, Direction: "decrease"})
	require.NoError(t, err)

	assert.True(t, repo.filter.ActiveOnly)
	assert.Equal(t, 2, resp.Updated)
	assert.Equal(t, map[int64]int64{1: 27000, 2: 72000}, repo.prices)
}

func TestUseCase_ClampsAtZeroAndSkipsUnchanged(t *testing.T) {
	uc, repo := newFixture()
	repo.services[0].BasePrice = 0

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceIDs: []int64{1, 3},
		Type:       "fixed",
		Value:      1000,
		Direction:  "decrease",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, map[int64]int64{3: 0}, repo.prices)
}

func TestUseCase_MissingServiceChangesNothing(t *testing.T) {
	uc, repo := newFixture()

	_, err := uc.Execute(context.Background(), &Request{
		ServiceIDs: []int64{1, 42},
		Type:       "fixed",
		Value:      1000,
		Direction:  "increase",
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, repo.prices)
}

func TestUseCase_UpdateFailureRollsBack(t *testing.T) {
	uc, repo := newFixture()
	repo.failOnID = 2

	_, err := uc.Execute(context.Background(), &Request{All: true, Type: "fixed", Value: 1000, Direction: "increase"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, repo.prices)
	assert.False(t, repo.committed)
}

func TestUseCase_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{"type", Request{All: true, Type: "double", Value: 1, Direction: "increase"}, "type"},
		{"direction", Request{All: true, Type: "fixed", Value: 1, Direction: "up"}, "direction"},
		{"negative", Request{All: true, Type: "fixed", Value: -5, Direction: "increase"}, "value"},
		{"nan", Request{All: true, Type: "percent", Value: math.NaN(), Direction: "increase"}, "value"},
		{"inf", Request{All: true, Type: "fixed", Value: math.Inf(1), Direction: "increase"}, "value"},
		{"fixed overflow", Request{All: true, Type: "fixed", Value: 1e19, Direction: "increase"}, "value"},
		{"no target", Request{Type: "fixed", Value: 1, Direction: "increase"}, "serviceIds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newFixture()

			_, err := uc.Execute(context.Background(), &tt.req)

			var verr domain.ValidationErrors
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr, tt.field)
			assert.Empty(t, repo.prices)
		})
	}
}
