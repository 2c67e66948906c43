package get_calendar

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

type fakeHours struct {
	requested []int64
}

func (f *fakeHours) Resolver(_ context.Context, staffIDs ...int64) (calendar.HoursResolver, error) {
	f.requested = staffIDs
	return calendar.DefaultResolver{}, nil
}

type fakeMetrics struct {
	cells map[string]int
}

func (f *fakeMetrics) AddCalendarCells(class string, n int) {
	f.cells[class] += n
}

func date(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func appt(id int64, day, start string, staffID int64) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		Date:       date(day),
		StartTime:  types.TimeString(start),
		EmployeeID: staffID,
		Status:     domain.AppointmentScheduled,
	}
}

func newTestUseCase(repo *fakeRepo, hours *fakeHours, m *fakeMetrics) *UseCase {
	uc := NewUseCase(repo, hours, calendar.DefaultSettings(), m, nopLogger{})
	// Среда 18 декабря 2024
	uc.timeProvider = fixedTime{now: time.Date(2024, 12, 18, 10, 0, 0, 0, time.UTC)}
	return uc
}

func monthCell(grid *calendar.MonthGrid, d time.Time) calendar.MonthCell {
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Date.Equal(d) {
				return cell
			}
		}
	}
	return calendar.MonthCell{}
}

func TestUseCase_MonthDefaultsToToday(t *testing.T) {
	repo := &fakeRepo{items: []*domain.Appointment{
		appt(1, "2024-12-18", "14:00", 1),
		appt(2, "2024-12-18", "10:00", 2),
		appt(3, "2024-12-18", "11:00", 1),
	}}
	uc := newTestUseCase(repo, &fakeHours{}, &fakeMetrics{cells: map[string]int{}})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, calendar.ViewMonth, resp.View)
	assert.Equal(t, date("2024-12-18"), resp.Selected)
	assert.Equal(t, date("2024-12-01"), resp.Range.Start)
	assert.Equal(t, date("2025-01-04"), resp.Range.End)
	require.NotNil(t, repo.filter.StartDate)
	assert.Equal(t, resp.Range.Start, *repo.filter.StartDate)
	require.NotNil(t, resp.Month)
	assert.Nil(t, resp.Week)
	assert.Nil(t, resp.Day)

	cell := monthCell(resp.Month, date("2024-12-18"))
	assert.True(t, cell.IsToday)
	assert.Equal(t, 3, cell.Count)
	require.Len(t, cell.Preview, 2)
	assert.Equal(t, int64(2), cell.Preview[0].ID)
	assert.Equal(t, int64(3), cell.Preview[1].ID)
	assert.Equal(t, 1, cell.More)
}

func TestUseCase_MonthNarrowPreview(t *testing.T) {
	repo := &fakeRepo{items: []*domain.Appointment{
		appt(1, "2024-12-18", "14:00", 1),
		appt(2, "2024-12-18", "10:00", 2),
	}}
	uc := newTestUseCase(repo, &fakeHours{}, &fakeMetrics{cells: map[string]int{}})

	resp, err := uc.Execute(context.Background(), &Request{Narrow: true})
	require.NoError(t, err)

	cell := monthCell(resp.Month, date("2024-12-18"))
	assert.Len(t, cell.Preview, 1)
	assert.Equal(t, 1, cell.More)
}

func TestUseCase_WeekNavigateNextCountsCells(t *testing.T) {
	hours := &fakeHours{}
	m := &fakeMetrics{cells: map[string]int{}}
	uc := newTestUseCase(&fakeRepo{}, hours, m)

	resp, err := uc.Execute(context.Background(), &Request{View: "week", Action: "next"})
	require.NoError(t, err)

	assert.Equal(t, date("2024-12-25"), resp.Selected)
	assert.Equal(t, date("2024-12-22"), resp.Range.Start)
	assert.Equal(t, date("2024-12-28"), resp.Range.End)
	require.NotNil(t, resp.Week)
	assert.Empty(t, hours.requested)

	// Воскресенье закрыто целиком
	for _, row := range resp.Week.Rows {
		assert.Equal(t, calendar.NonWorking, row.Cells[0].Class)
	}

	total := 0
	for _, n := range resp.Counts {
		total += n
	}
	assert.Equal(t, 7*18, total)
	assert.Equal(t, resp.Counts[calendar.Break], m.cells[string(calendar.Break)])
	assert.Zero(t, resp.Counts[calendar.Occupied])
}

func TestUseCase_DayClassifiesStaffSlots(t *testing.T) {
	repo := &fakeRepo{items: []*domain.Appointment{
		appt(1, "2024-12-18", "10:00", 1),
		appt(2, "2024-12-18", "11:00", 2),
	}}
	hours := &fakeHours{}
	uc := newTestUseCase(repo, hours, &fakeMetrics{cells: map[string]int{}})

	resp, err := uc.Execute(context.Background(), &Request{View: "day", StaffID: ptr.Ptr(int64(1))})
	require.NoError(t, err)

	require.NotNil(t, resp.Day)
	assert.Equal(t, []int64{1}, hours.requested)
	assert.Equal(t, ptr.Ptr(int64(1)), repo.filter.EmployeeID)

	bySlot := map[types.TimeString]calendar.Cell{}
	for _, cell := range resp.Day.Rows {
		bySlot[cell.Slot] = cell
	}
	assert.Equal(t, calendar.Available, bySlot["09:00"].Class)
	assert.Equal(t, calendar.Occupied, bySlot["10:00"].Class)
	assert.Equal(t, calendar.Available, bySlot["11:00"].Class)
	assert.Equal(t, calendar.Break, bySlot["12:30"].Class)
}

func TestUseCase_DayOnClosedMondayIgnoresExistingAppointment(t *testing.T) {
	repo := &fakeRepo{items: []*domain.Appointment{appt(1, "2024-12-16", "10:00", 1)}}
	uc := newTestUseCase(repo, &fakeHours{}, &fakeMetrics{cells: map[string]int{}})

	resp, err := uc.Execute(context.Background(), &Request{
		View:    "day",
		Date:    ptr.Ptr(date("2024-12-16")),
		StaffID: ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	for _, cell := range resp.Day.Rows {
		assert.Equal(t, calendar.NonWorking, cell.Class)
	}
}

func TestUseCase_StatusFilterHidesCancelled(t *testing.T) {
	cancelled := appt(2, "2024-12-18", "11:00", 1)
	cancelled.Status = domain.AppointmentCancelled
	repo := &fakeRepo{items: []*domain.Appointment{appt(1, "2024-12-18", "10:00", 1), cancelled}}
	uc := newTestUseCase(repo, &fakeHours{}, &fakeMetrics{cells: map[string]int{}})

	resp, err := uc.Execute(context.Background(), &Request{View: "day", Status: "scheduled"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestUseCase_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeHours{}, &fakeMetrics{cells: map[string]int{}})

	tests := []struct {
		name string
		req  Request
	}{
		{"view", Request{View: "year"}},
		{"action", Request{Action: "jump"}},
		{"category", Request{Category: "spa"}},
		{"status", Request{Status: "lost"}},
		{"staff", Request{StaffID: ptr.Ptr(int64(0))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{err: errors.New("timeout")}, &fakeHours{}, &fakeMetrics{cells: map[string]int{}})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
