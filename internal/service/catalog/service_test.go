package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeCatalog struct {
	services   map[int64]*domain.Service
	categories map[int64]*domain.Category
	nextID     int64
}

func newFakeCatalog(services ...*domain.Service) *fakeCatalog {
	f := &fakeCatalog{services: map[int64]*domain.Service{}, categories: map[int64]*domain.Category{}, nextID: 100}
	for _, s := range services {
		f.services[s.ID] = s
	}
	return f
}

func (f *fakeCatalog) CreateService(_ context.Context, s *domain.Service) (*domain.Service, error) {
	s.ID = f.nextID
	f.nextID++
	f.services[s.ID] = s
	return s, nil
}

func (f *fakeCatalog) GetService(_ context.Context, id int64) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return s, nil
}

func (f *fakeCatalog) ListServices(context.Context, catalogRepo.ServiceFilter) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(f.services))
	for id := int64(1); id < f.nextID; id++ {
		if s, ok := f.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCatalog) UpdateService(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if _, ok := f.services[s.ID]; !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	f.services[s.ID] = s
	return s, nil
}

func (f *fakeCatalog) DeleteService(_ context.Context, id int64) error {
	if _, ok := f.services[id]; !ok {
		return catalogRepo.ErrServiceNotFound
	}
	delete(f.services, id)
	return nil
}

func (f *fakeCatalog) CreateCategory(_ context.Context, c *domain.Category) (*domain.Category, error) {
	c.ID = f.nextID
	f.nextID++
	f.categories[c.ID] = c
	return c, nil
}

func (f *fakeCatalog) ListCategories(context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(f.categories))
	for _, c := range f.categories {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCatalog) UpdateCategory(_ context.Context, c *domain.Category) (*domain.Category, error) {
	if _, ok := f.categories[c.ID]; !ok {
		return nil, catalogRepo.ErrCategoryNotFound
	}
	f.categories[c.ID] = c
	return c, nil
}

func (f *fakeCatalog) DeleteCategory(_ context.Context, id int64) error {
	if _, ok := f.categories[id]; !ok {
		return catalogRepo.ErrCategoryNotFound
	}
	delete(f.categories, id)
	return nil
}

type fakeAppointments struct {
	items  []*domain.Appointment
	filter domain.AppointmentFilter
	err    error
}

func (f *fakeAppointments) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	f.filter = filter
	return f.items, f.err
}

func withService(id int64) *domain.Appointment {
	return &domain.Appointment{Services: []domain.AppointmentService{{ServiceID: id}}}
}

func newTestService(repo CatalogRepository, appts AppointmentRepository) *Service {
	svc := NewService(repo, appts, nopLogger{})
	svc.timeProvider = fixedTime{now: time.Date(2024, 12, 18, 15, 30, 0, 0, time.UTC)}
	return svc
}

func TestService_ListServices_PopularityUsesTrailingWindow(t *testing.T) {
	repo := newFakeCatalog(
		&domain.Service{ID: 1, Name: "여성 커트", BasePrice: 30000},
		&domain.Service{ID: 2, Name: "전체 염색", BasePrice: 80000},
		&domain.Service{ID: 3, Name: "젤 네일", BasePrice: 45000},
	)
	repo.nextID = 4
	appts := &fakeAppointments{items: []*domain.Appointment{withService(3), withService(2), withService(3)}}
	svc := newTestService(repo, appts)

	got, err := svc.ListServices(context.Background(), "popularity")
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{got[0].ID, got[1].ID, got[2].ID})

	require.NotNil(t, appts.filter.StartDate)
	require.NotNil(t, appts.filter.EndDate)
	assert.Equal(t, time.Date(2024, 9, 19, 0, 0, 0, 0, time.UTC), *appts.filter.StartDate)
	assert.Equal(t, time.Date(2024, 12, 18, 0, 0, 0, 0, time.UTC), *appts.filter.EndDate)
}

func TestService_ListServices_PriceDoesNotLoadAppointments(t *testing.T) {
	repo := newFakeCatalog(
		&domain.Service{ID: 1, BasePrice: 80000},
		&domain.Service{ID: 2, BasePrice: 30000},
	)
	repo.nextID = 3
	appts := &fakeAppointments{err: errors.New("must not be called")}
	svc := newTestService(repo, appts)

	got, err := svc.ListServices(context.Background(), "price")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Nil(t, appts.filter.StartDate)
}

func TestService_ListServices_UnknownSort(t *testing.T) {
	svc := newTestService(newFakeCatalog(), &fakeAppointments{})

	_, err := svc.ListServices(context.Background(), "cheapest")

	var verr domain.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "sort")
}

func TestService_CreateService_Validation(t *testing.T) {
	svc := newTestService(newFakeCatalog(), &fakeAppointments{})

	_, err := svc.CreateService(context.Background(), ServiceInput{
		Name:            "",
		BasePrice:       0,
		DurationMinutes: domain.MaxServiceDuration + 30,
		PriceOptions:    []domain.PriceOption{{Name: "", Price: 1000}, {Name: "롱", Price: -1}},
	})

	var verr domain.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "name")
	assert.Contains(t, verr, "basePrice")
	assert.Contains(t, verr, "duration")
	assert.Contains(t, verr, "priceOptions[0]")
	assert.Contains(t, verr, "priceOptions[1]")
}

func TestService_CreateService_DefaultsToActive(t *testing.T) {
	svc := newTestService(newFakeCatalog(), &fakeAppointments{})

	created, err := svc.CreateService(context.Background(), ServiceInput{
		Name:            " 여성 커트 ",
		BasePrice:       30000,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, "여성 커트", created.Name)
	assert.True(t, created.Active)
	assert.NotNil(t, created.PriceOptions)
}

func TestService_UpdateService_NotFound(t *testing.T) {
	svc := newTestService(newFakeCatalog(), &fakeAppointments{})

	_, err := svc.UpdateService(context.Background(), 42, ServiceInput{
		Name:            "커트",
		BasePrice:       30000,
		DurationMinutes: 60,
		Active:          ptr.Ptr(false),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_DeleteService_RequiresConfirmation(t *testing.T) {
	repo := newFakeCatalog(&domain.Service{ID: 1})
	svc := newTestService(repo, &fakeAppointments{})

	err := svc.DeleteService(context.Background(), 1, false)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.Contains(t, repo.services, int64(1))

	require.NoError(t, svc.DeleteService(context.Background(), 1, true))
	assert.NotContains(t, repo.services, int64(1))

	assert.ErrorIs(t, svc.DeleteService(context.Background(), 1, true), ErrServiceNotFound)
}

func TestService_Categories(t *testing.T) {
	repo := newFakeCatalog()
	svc := newTestService(repo, &fakeAppointments{})
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, CategoryInput{Name: "헤어", SortOrder: -1})
	var verr domain.ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "sortOrder")

	created, err := svc.CreateCategory(ctx, CategoryInput{Name: "헤어", Color: "#ff8800", SortOrder: 1})
	require.NoError(t, err)
	assert.True(t, created.Active)

	updated, err := svc.UpdateCategory(ctx, created.ID, CategoryInput{Name: "네일", SortOrder: 2, Active: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, "네일", updated.Name)
	assert.False(t, updated.Active)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, created.ID, false), domain.ErrConfirmationRequired)
	require.NoError(t, svc.DeleteCategory(ctx, created.ID, true))
	assert.ErrorIs(t, svc.DeleteCategory(ctx, created.ID, true), ErrCategoryNotFound)

	_, err = svc.UpdateCategory(ctx, 999, CategoryInput{Name: "x"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
