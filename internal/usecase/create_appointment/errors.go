package create_appointment

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_appointment: customer not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("create_appointment: staff not found")

	// ErrStaffUnavailable возвращается, когда сотрудник в отпуске или уволен
	ErrStaffUnavailable = errors.New("create_appointment: staff does not take appointments")

	// ErrServiceNotFound возвращается, когда одна из услуг не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSlotNotWorking возвращается, когда слот приходится на выходной, обед или нерабочее время
	ErrSlotNotWorking = errors.New("create_appointment: slot is outside working time")

	// ErrSlotOccupied возвращается, когда слот занят или время пересекается с другой записью мастера
	ErrSlotOccupied = errors.New("create_appointment: slot is occupied")

	// ErrOutsideWorkingHours возвращается, когда запись заканчивается после конца рабочего дня
	ErrOutsideWorkingHours = errors.New("create_appointment: appointment ends after working hours")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
