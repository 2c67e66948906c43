package domain

import (
	"sort"
	"strings"
)

// ValidationErrors ошибки валидации формы по именам полей
// Пустая карта означает, что ошибок нет
type ValidationErrors map[string]string

// Add добавляет ошибку поля, первая ошибка поля сохраняется
func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; exists {
		return
	}
	v[field] = message
}

// HasErrors возвращает true, если есть хотя бы одна ошибка
func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Err возвращает v как error или nil, если ошибок нет
func (v ValidationErrors) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return v
}

// Error реализует error, поля отсортированы для стабильного вывода
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidatePhone проверяет формат номера телефона
func ValidatePhone(v ValidationErrors, field, phone string) {
	if strings.TrimSpace(phone) == "" {
		v.Add(field, "обязательное поле")
		return
	}
	if !PhonePattern.MatchString(strings.TrimSpace(phone)) {
		v.Add(field, "некорректный формат телефона")
	}
}

// ValidateName проверяет обязательное текстовое поле
func ValidateName(v ValidationErrors, field, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		v.Add(field, "обязательное поле")
		return
	}
	if len([]rune(name)) > MaxNameLength {
		v.Add(field, "слишком длинное значение")
	}
}

// ValidatePositive проверяет, что число больше нуля
func ValidatePositive(v ValidationErrors, field string, value int64) {
	if value <= 0 {
		v.Add(field, "значение должно быть больше нуля")
	}
}
