package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const categoriesTable = "categories"

var categoryColumns = []string{"id", "name", "color", "sort_order", "active", "created_at", "updated_at"}

// CreateCategory создает категорию
func (r *Repository) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(categoriesTable).
		Columns("name", "color", "sort_order", "active").
		Values(c.Name, c.Color, c.SortOrder, c.Active).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCategory - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateCategory - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// ListCategories возвращает категории в порядке отображения
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(categoryColumns...).
		From(categoriesTable).
		OrderBy("sort_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var (
			c                    domain.Category
			createdAt, updatedAt sql.NullTime
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.SortOrder, &c.Active, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// UpdateCategory обновляет категорию
func (r *Repository) UpdateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(categoriesTable).
		Set("name", c.Name).
		Set("color", c.Color).
		Set("sort_order", c.SortOrder).
		Set("active", c.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCategory - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateCategory - execute update: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// DeleteCategory удаляет категорию, у услуг category_id становится NULL
func (r *Repository) DeleteCategory(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(categoriesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteCategory - build delete query: %v", ErrBuildQuery, err)
	}

	return execAffectingOne(ctx, executor, "DeleteCategory", query, args, ErrCategoryNotFound)
}
