package export_appointments

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/usecase/list_appointments"
)

// UseCase use case для выгрузки списка записей в xlsx
type UseCase struct {
	lister AppointmentLister
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(lister AppointmentLister, logger Logger) *UseCase {
	return &UseCase{
		lister: lister,
		logger: logger,
	}
}

// Execute строит xlsx с теми же фильтрами и сортировкой, что и список
// Ошибки списка возвращаются без изменений
func (uc *UseCase) Execute(ctx context.Context, req *list_appointments.Request) (*Response, error) {
	list, err := uc.lister.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	content, err := buildWorkbook(list)
	if err != nil {
		uc.logger.Error("ExportAppointments: %v", err)
		return nil, err
	}

	fileName := fmt.Sprintf("appointments_%s_%s.xlsx",
		list.Range.Start.Format(domain.DateFormat), list.Range.End.Format(domain.DateFormat))

	uc.logger.Info("ExportAppointments: exported %d appointments to %s", len(list.Appointments), fileName)

	return &Response{
		FileName: fileName,
		Content:  content,
		Rows:     len(list.Appointments),
	}, nil
}

func buildWorkbook(list *list_appointments.Response) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, sheetName); err != nil {
		return nil, fmt.Errorf("%w: rename sheet: %v", ErrBuildWorkbook, err)
	}

	if err := writeRow(f, 1, toAny(headers)); err != nil {
		return nil, err
	}

	for i, a := range list.Appointments {
		if err := writeRow(f, i+2, appointmentRow(a)); err != nil {
			return nil, err
		}
	}

	// Итоговая строка под суммой
	totalRow := make([]interface{}, len(headers))
	totalRow[0] = "합계"
	totalRow[8] = list.TotalAmount
	if err := writeRow(f, len(list.Appointments)+2, totalRow); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: write: %v", ErrBuildWorkbook, err)
	}

	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("%w: cell name: %v", ErrBuildWorkbook, err)
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("%w: row %d: %v", ErrBuildWorkbook, row, err)
	}
	return nil
}

func appointmentRow(a *domain.Appointment) []interface{} {
	names := make([]string, 0, len(a.Services))
	for _, s := range a.Services {
		names = append(names, s.Name)
	}

	status := string(a.Status)
	if label, ok := statusLabels[status]; ok {
		status = label
	}

	memo := ""
	if a.Memo != nil {
		memo = *a.Memo
	}

	return []interface{}{
		a.DateKey(),
		a.StartTime.String(),
		a.EndTime.String(),
		a.CustomerName,
		a.CustomerPhone,
		strings.Join(names, ", "),
		a.EmployeeName,
		status,
		a.Price(),
		memo,
	}
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
