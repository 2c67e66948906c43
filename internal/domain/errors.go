package domain

import "errors"

// ErrConfirmationRequired возвращается деструктивными операциями без явного подтверждения
// Состояние при этом не меняется
var ErrConfirmationRequired = errors.New("domain: confirmation required")
