package staff

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	staff      []*domain.Staff
	lastStatus *domain.StaffStatus
	deleted    []int64
}

func (f *fakeRepo) Create(_ context.Context, s *domain.Staff) (*domain.Staff, error) {
	s.ID = int64(len(f.staff) + 1)
	f.staff = append(f.staff, s)
	return s, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Staff, error) {
	for _, s := range f.staff {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, staffRepo.ErrStaffNotFound
}

func (f *fakeRepo) List(_ context.Context, status *domain.StaffStatus) ([]*domain.Staff, error) {
	f.lastStatus = status
	out := make([]*domain.Staff, len(f.staff))
	copy(out, f.staff)
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, s *domain.Staff) (*domain.Staff, error) {
	return s, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, err := f.GetByID(context.Background(), id); err != nil {
		return err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCache struct {
	invalidated []int64
}

func (f *fakeCache) Invalidate(_ context.Context, staffID int64) error {
	f.invalidated = append(f.invalidated, staffID)
	return nil
}

func TestService_ListOrdersByPositionRank(t *testing.T) {
	repo := &fakeRepo{staff: []*domain.Staff{
		{ID: 1, Name: "인턴", Position: domain.PositionIntern},
		{ID: 2, Name: "원장", Position: domain.PositionOwner},
		{ID: 3, Name: "디자이너", Position: domain.PositionSenior},
		{ID: 4, Name: "실장", Position: domain.PositionManager},
	}}
	svc := NewService(repo, nil, nopLogger{})

	got, err := svc.List(context.Background(), nil)
	require.NoError(t, err)

	ids := make([]int64, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int64{2, 4, 3, 1}, ids)
}

func TestService_ListRejectsUnknownStatus(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, nopLogger{})

	_, err := svc.List(context.Background(), ptr.Ptr("fired"))
	var fields domain.ValidationErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "status")
}

func TestService_CreateDefaultsToActive(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, nopLogger{})

	created, err := svc.Create(context.Background(), StaffInput{Name: "최유나", Position: "senior", Role: "헤어 디자이너"})
	require.NoError(t, err)
	assert.Equal(t, domain.StaffActive, created.Status)
	assert.True(t, created.CanTakeAppointments())

	_, err = svc.Create(context.Background(), StaffInput{Name: "", Position: "boss", MonthlyServices: -1})
	var fields domain.ValidationErrors
	require.True(t, errors.As(err, &fields))
	assert.Len(t, fields, 3)
}

func TestService_DeleteInvalidatesCache(t *testing.T) {
	repo := &fakeRepo{staff: []*domain.Staff{{ID: 1, Name: "원장", Position: domain.PositionOwner}}}
	cache := &fakeCache{}
	svc := NewService(repo, cache, nopLogger{})
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, 1, false), domain.ErrConfirmationRequired)
	assert.Empty(t, repo.deleted)

	require.NoError(t, svc.Delete(ctx, 1, true))
	assert.Equal(t, []int64{1}, cache.invalidated)

	assert.ErrorIs(t, svc.Delete(ctx, 5, true), ErrStaffNotFound)
}
