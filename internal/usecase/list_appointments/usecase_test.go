package list_appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRepo struct {
	items  []*domain.Appointment
	filter domain.AppointmentFilter
	err    error
}

func (f *fakeRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	f.filter = filter
	return f.items, f.err
}

func date(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func appt(id int64, day, customer, service string, price int64) *domain.Appointment {
	return &domain.Appointment{
		ID:           id,
		Date:         date(day),
		StartTime:    types.TimeString("10:00"),
		CustomerName: customer,
		Services:     []domain.AppointmentService{{ServiceID: id, Name: service, DurationMinutes: 60, Price: price}},
		EmployeeID:   1,
		Status:       domain.AppointmentScheduled,
	}
}

func ids(appointments []*domain.Appointment) []int64 {
	out := make([]int64, 0, len(appointments))
	for _, a := range appointments {
		out = append(out, a.ID)
	}
	return out
}

func newTestUseCase(repo *fakeRepo) *UseCase {
	uc := NewUseCase(repo, calendar.DefaultSettings(), nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2024, 12, 18, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_DefaultsToThisMonth(t *testing.T) {
	repo := &fakeRepo{items: []*domain.Appointment{
		appt(1, "2024-12-01", "김민지", "여성 커트", 30000),
		appt(2, "2024-12-31", "이수진", "젤 네일", 45000),
		appt(3, "2025-01-01", "정하늘", "전체 염색", 80000),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, date("2024-12-01"), resp.Range.Start)
	assert.Equal(t, date("2024-12-31"), resp.Range.End)
	assert.Equal(t, []int64{1, 2}, ids(resp.Appointments))
	assert.Equal(t, int64(75000), resp.TotalAmount)
	require.NotNil(t, repo.filter.EndDate)
	assert.Equal(t, date("2024-12-31"), *repo.filter.EndDate)
}

func TestUseCase_CustomRangeImpliedByBounds(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Start: ptr.Ptr(date("2024-11-01")),
		End:   ptr.Ptr(date("2024-11-15")),
	})
	require.NoError(t, err)
	assert.Equal(t, date("2024-11-01"), resp.Range.Start)
	assert.Equal(t, date("2024-11-15"), resp.Range.End)
	assert.Empty(t, resp.Appointments)
}

func TestUseCase_FiltersAndSort(t *testing.T) {
	repo := &fakeRepo{items: []*domain.Appointment{
		appt(1, "2024-12-02", "김민지", "전체 염색", 80000),
		appt(2, "2024-12-03", "이수진", "젤 네일", 45000),
		appt(3, "2024-12-04", "정하늘", "남성 커트", 20000),
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{Category: "hair", Sort: "price"})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1}, ids(resp.Appointments))

	resp, err = uc.Execute(context.Background(), &Request{Query: "네일"})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(resp.Appointments))
}

func TestUseCase_StatusAndStaffPushedToRepository(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{Range: "last-week", Status: "completed", StaffID: ptr.Ptr(int64(3))})
	require.NoError(t, err)

	require.NotNil(t, repo.filter.Status)
	assert.Equal(t, domain.AppointmentCompleted, *repo.filter.Status)
	assert.Equal(t, ptr.Ptr(int64(3)), repo.filter.EmployeeID)
	assert.Equal(t, date("2024-12-08"), *repo.filter.StartDate)
	assert.Equal(t, date("2024-12-14"), *repo.filter.EndDate)
}

func TestUseCase_CustomerFilter(t *testing.T) {
	own := appt(1, "2024-12-10", "김민지", "여성 커트", 30000)
	own.CustomerID = 7
	other := appt(2, "2024-12-11", "이수진", "전체 염색", 80000)
	other.CustomerID = 8
	repo := &fakeRepo{items: []*domain.Appointment{own, other}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{CustomerID: ptr.Ptr(int64(7))})
	require.NoError(t, err)

	assert.Equal(t, ptr.Ptr(int64(7)), repo.filter.CustomerID)
	assert.Equal(t, []int64{1}, ids(resp.Appointments))
	assert.Equal(t, int64(30000), resp.TotalAmount)
}

func TestUseCase_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{})

	tests := []struct {
		name string
		req  Request
	}{
		{"preset", Request{Range: "yesterday"}},
		{"custom without end", Request{Range: "custom", Start: ptr.Ptr(date("2024-12-01"))}},
		{"end before start", Request{Start: ptr.Ptr(date("2024-12-10")), End: ptr.Ptr(date("2024-12-01"))}},
		{"sort", Request{Sort: "oldest"}},
		{"status", Request{Status: "lost"}},
		{"category", Request{Category: "spa"}},
		{"customer", Request{CustomerID: ptr.Ptr(int64(0))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{err: errors.New("boom")})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
