package workinghours

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/cache/schedule"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTemplates struct {
	rows  map[int64]domain.WeeklyTemplate
	reads int
}

func (f *fakeTemplates) GetTemplate(_ context.Context, staffID int64) (domain.WeeklyTemplate, error) {
	f.reads++
	tpl, ok := f.rows[staffID]
	if !ok {
		return domain.WeeklyTemplate{}, staffRepo.ErrTemplateNotFound
	}
	return tpl, nil
}

func (f *fakeTemplates) ReplaceTemplate(_ context.Context, staffID int64, tpl domain.WeeklyTemplate) error {
	f.rows[staffID] = tpl
	return nil
}

func (f *fakeTemplates) DeleteTemplate(_ context.Context, staffID int64) error {
	delete(f.rows, staffID)
	return nil
}

type fakeStaff struct{}

func (fakeStaff) GetByID(_ context.Context, id int64) (*domain.Staff, error) {
	if id > 10 {
		return nil, staffRepo.ErrStaffNotFound
	}
	return &domain.Staff{ID: id, Status: domain.StaffActive}, nil
}

type fakeTx struct{ calls int }

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func newService(t *testing.T) (*Service, *fakeTemplates, *fakeTx) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	templates := &fakeTemplates{rows: map[int64]domain.WeeklyTemplate{}}
	tx := &fakeTx{}
	svc := NewService(templates, fakeStaff{}, schedule.NewCache(client, time.Minute), tx, nopLogger{})
	return svc, templates, tx
}

func lateShift() domain.WeeklyTemplate {
	tpl := domain.DefaultWeeklyTemplate()
	tpl[time.Wednesday] = domain.WorkingHours{IsWorking: true, Start: "13:00", End: "21:00"}
	return tpl
}

func TestService_GetTemplate_DefaultWhenNoOverride(t *testing.T) {
	svc, _, _ := newService(t)

	tpl, err := svc.GetTemplate(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, tpl.Custom)
	assert.Equal(t, domain.DefaultWeeklyTemplate(), tpl.Week)
}

func TestService_GetTemplate_UsesCacheAfterFirstRead(t *testing.T) {
	svc, templates, _ := newService(t)
	templates.rows[2] = lateShift()
	ctx := context.Background()

	first, err := svc.GetTemplate(ctx, 2)
	require.NoError(t, err)
	assert.True(t, first.Custom)

	second, err := svc.GetTemplate(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, first.Week, second.Week)
	assert.Equal(t, 1, templates.reads)
}

func TestService_SetTemplate(t *testing.T) {
	svc, templates, tx := newService(t)
	ctx := context.Background()

	_, err := svc.SetTemplate(ctx, 2, lateShift(), false)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.Empty(t, templates.rows)

	// Кэш прогрет старым графиком, запись должна его сбросить
	templates.rows[2] = domain.DefaultWeeklyTemplate()
	_, err = svc.GetTemplate(ctx, 2)
	require.NoError(t, err)

	saved, err := svc.SetTemplate(ctx, 2, lateShift(), true)
	require.NoError(t, err)
	assert.True(t, saved.Custom)
	assert.Equal(t, 1, tx.calls)

	got, err := svc.GetTemplate(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("13:00"), got.Week.Day(time.Wednesday).Start)
}

func TestService_SetTemplate_ValidatesEveryDay(t *testing.T) {
	svc, _, _ := newService(t)

	tpl := domain.DefaultWeeklyTemplate()
	tpl[time.Tuesday] = domain.WorkingHours{IsWorking: true, Start: "18:00", End: "09:00"}
	tpl[time.Friday] = domain.WorkingHours{IsWorking: true, Start: "25:00", End: "26:00"}

	_, err := svc.SetTemplate(context.Background(), 2, tpl, true)
	var fields domain.ValidationErrors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "days[2]")
	assert.Contains(t, fields, "days[5]")
}

func TestService_Reset(t *testing.T) {
	svc, templates, _ := newService(t)
	templates.rows[3] = lateShift()
	ctx := context.Background()

	_, err := svc.GetTemplate(ctx, 3)
	require.NoError(t, err)

	reset, err := svc.Reset(ctx, 3, true)
	require.NoError(t, err)
	assert.False(t, reset.Custom)

	got, err := svc.GetTemplate(ctx, 3)
	require.NoError(t, err)
	assert.False(t, got.Custom)

	_, err = svc.Reset(ctx, 99, true)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestService_Resolver(t *testing.T) {
	svc, templates, _ := newService(t)
	templates.rows[2] = lateShift()

	resolver, err := svc.Resolver(context.Background(), 1, 2)
	require.NoError(t, err)

	wed := time.Wednesday
	assert.Equal(t, types.TimeString("09:00"), resolver.Resolve(1, wed).Start)
	assert.Equal(t, types.TimeString("13:00"), resolver.Resolve(2, wed).Start)
	assert.False(t, resolver.Resolve(2, wed).HasLunch())

}
