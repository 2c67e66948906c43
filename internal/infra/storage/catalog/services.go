package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const servicesTable = "services"

var serviceColumns = []string{
	"id",
	"name",
	"category_id",
	"category",
	"base_price",
	"duration_minutes",
	"active",
	"price_options",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога: услуги и категории
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ServiceFilter фильтр выборки услуг
type ServiceFilter struct {
	IDs        []int64
	ActiveOnly bool
	ForUpdate  bool // Блокировать строки, только внутри транзакции
}

// CreateService создает услугу
func (r *Repository) CreateService(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	options, err := encodeOptions(s.PriceOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - %v", ErrEncodeOptions, err)
	}

	query, args, err := psqlbuilder.Insert(servicesTable).
		Columns("name", "category_id", "category", "base_price", "duration_minutes", "active", "price_options").
		Values(s.Name, s.CategoryID, s.Category, s.BasePrice, s.DurationMinutes, s.Active, options).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetService получает услугу по ID
func (r *Repository) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From(servicesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListServices возвращает услуги по фильтру, упорядоченные по ID
func (r *Repository) ListServices(ctx context.Context, filter ServiceFilter) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns...).From(servicesTable)
	if filter.IDs != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"id": filter.IDs})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}
	selectBuilder = selectBuilder.OrderBy("id ASC")
	if filter.ForUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// UpdateService обновляет услугу
func (r *Repository) UpdateService(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	options, err := encodeOptions(s.PriceOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateService - %v", ErrEncodeOptions, err)
	}

	query, args, err := psqlbuilder.Update(servicesTable).
		Set("name", s.Name).
		Set("category_id", s.CategoryID).
		Set("category", s.Category).
		Set("base_price", s.BasePrice).
		Set("duration_minutes", s.DurationMinutes).
		Set("active", s.Active).
		Set("price_options", options).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateService - execute update: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// UpdateServicePrice меняет только базовую цену услуги
func (r *Repository) UpdateServicePrice(ctx context.Context, id int64, price int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(servicesTable).
		Set("base_price", price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateServicePrice - build update query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, executor, "UpdateServicePrice", query, args, ErrServiceNotFound)
}

// DeleteService удаляет услугу
func (r *Repository) DeleteService(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(servicesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteService - build delete query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, executor, "DeleteService", query, args, ErrServiceNotFound)
}

func execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}, notFound error) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

func encodeOptions(options []domain.PriceOption) ([]byte, error) {
	if options == nil {
		options = []domain.PriceOption{}
	}
	return json.Marshal(options)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row scanner) (*domain.Service, error) {
	var (
		s                    domain.Service
		options              []byte
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.CategoryID,
		&s.Category,
		&s.BasePrice,
		&s.DurationMinutes,
		&s.Active,
		&options,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(options) > 0 {
		if err := json.Unmarshal(options, &s.PriceOptions); err != nil {
			return nil, fmt.Errorf("decode price options: %w", err)
		}
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
