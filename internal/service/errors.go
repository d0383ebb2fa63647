package service

import (
	"errors"
	"fmt"
	"net/http"

	"activities-service/internal/repository"
)

// Коды ошибок, которые видит клиент.
const (
	CodeBadRequest        = "BAD_REQUEST"
	CodeActivityNotFound  = "ACTIVITY_NOT_FOUND"
	CodeAlreadyRegistered = "ALREADY_REGISTERED"
	CodeNotRegistered     = "NOT_REGISTERED"
	CodeCapacityExceeded  = "CAPACITY_EXCEEDED"
	CodeInternal          = "INTERNAL"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для некорректных параметров запроса.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: msg,
		Status:  http.StatusUnprocessableEntity,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов.
// HTTP-статус подбирается по коду.
func ErrDomain(code, msg string) *AppError {
	status := http.StatusConflict
	if code == CodeAlreadyRegistered {
		status = http.StatusBadRequest
	}
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  status,
	}
}

// ErrInternal оборачивает неожиданную ошибку в AppError со статусом 500.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// fromRepository переводит ошибки реестра в AppError.
func fromRepository(err error, op string) *AppError {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		return ErrNotFound(CodeActivityNotFound, "Activity not found")
	case errors.Is(err, repository.ErrAlreadyRegistered):
		return ErrDomain(CodeAlreadyRegistered, "Student already signed up for this activity")
	case errors.Is(err, repository.ErrNotRegistered):
		return ErrNotFound(CodeNotRegistered, "Participant not found for this activity")
	case errors.Is(err, repository.ErrCapacityExceeded):
		return ErrDomain(CodeCapacityExceeded, "Activity is full")
	default:
		return ErrInternal("failed to "+op, err)
	}
}
