package domain

import "errors"

// Виды ошибок, которые различает слой представления.
// Ошибки пакетов оборачивают один из этих видов, проверка - через errors.Is
var (
	// ErrInvalidInput некорректные или отсутствующие поля запроса, исправляется пользователем
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound неизвестный id услуги или записи
	ErrNotFound = errors.New("not found")

	// ErrConflict слот уже занят (или нарушена уникальность)
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized нет аутентифицированного сотрудника
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStorageUnavailable хранилище недоступно, повтор - на стороне вызывающего
	ErrStorageUnavailable = errors.New("storage unavailable")
)
