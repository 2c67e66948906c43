package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const hoursTable = "staff_working_hours"

var hoursColumns = []string{
	"staff_id",
	"weekday",
	"is_working",
	"start_time",
	"end_time",
	"lunch_start",
	"lunch_end",
}

// GetTemplate возвращает индивидуальный график сотрудника
// Дни без строки в таблице считаются выходными
// Если строк нет совсем, возвращает ErrTemplateNotFound
func (r *Repository) GetTemplate(ctx context.Context, staffID int64) (domain.WeeklyTemplate, error) {
	templates, err := r.listTemplates(ctx, squirrel.Eq{"staff_id": staffID})
	if err != nil {
		return domain.WeeklyTemplate{}, fmt.Errorf("GetTemplate - %w", err)
	}

	tpl, ok := templates[staffID]
	if !ok {
		return domain.WeeklyTemplate{}, ErrTemplateNotFound
	}

	return tpl, nil
}

// ListTemplates возвращает индивидуальные графики всех сотрудников, у которых они есть
func (r *Repository) ListTemplates(ctx context.Context) (map[int64]domain.WeeklyTemplate, error) {
	templates, err := r.listTemplates(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("ListTemplates - %w", err)
	}
	return templates, nil
}

func (r *Repository) listTemplates(ctx context.Context, where squirrel.Sqlizer) (map[int64]domain.WeeklyTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(hoursColumns...).From(hoursTable)
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.OrderBy("staff_id ASC", "weekday ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	templates := make(map[int64]domain.WeeklyTemplate)
	for rows.Next() {
		var (
			staffID int64
			weekday int
			hours   domain.WorkingHours
		)
		err := rows.Scan(
			&staffID,
			&weekday,
			&hours.IsWorking,
			&hours.Start,
			&hours.End,
			&hours.LunchStart,
			&hours.LunchEnd,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan row: %v", ErrScanRow, err)
		}
		if weekday < int(time.Sunday) || weekday > int(time.Saturday) {
			continue
		}

		tpl := templates[staffID]
		tpl[weekday] = hours
		templates[staffID] = tpl
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return templates, nil
}

// ReplaceTemplate полностью перезаписывает график сотрудника
// Вызывать внутри транзакции, иначе между удалением и вставкой график будет пустым
func (r *Repository) ReplaceTemplate(ctx context.Context, staffID int64, tpl domain.WeeklyTemplate) error {
	if err := r.DeleteTemplate(ctx, staffID); err != nil {
		return fmt.Errorf("ReplaceTemplate - %w", err)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert(hoursTable).Columns(hoursColumns...)
	for weekday, hours := range tpl {
		if !hours.IsWorking {
			insertBuilder = insertBuilder.Values(staffID, weekday, false, nil, nil, nil, nil)
			continue
		}
		insertBuilder = insertBuilder.Values(
			staffID,
			weekday,
			true,
			hours.Start,
			hours.End,
			hours.LunchStart,
			hours.LunchEnd,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceTemplate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceTemplate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteTemplate удаляет индивидуальный график, после чего действует общий
func (r *Repository) DeleteTemplate(ctx context.Context, staffID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(hoursTable).
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteTemplate - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteTemplate - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
