package export_appointments

import "errors"

var (
	// ErrBuildWorkbook возвращается, если не удалось собрать xlsx файл
	ErrBuildWorkbook = errors.New("export_appointments: failed to build workbook")
)
