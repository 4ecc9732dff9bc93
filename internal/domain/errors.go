package domain

import (
	"fmt"
	"sort"
	"strings"
)

const (
	CodeNotFound          = "NOT_FOUND"
	CodeForbidden         = "FORBIDDEN"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInvalidInviteCode = "INVALID_INVITE_CODE"
	CodeValidation        = "VALIDATION"
	CodeAlreadyExists     = "ALREADY_EXISTS"
)

type DomainError struct {
	Code    string
	Message string
	// Field - имя поля формы, к которому относится ошибка (если есть)
	Field string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrForbidden - у пользователя нет прав на операцию
	ErrForbidden = &DomainError{
		Code:    CodeForbidden,
		Message: "user is not allowed to perform this action",
	}

	// ErrUnauthorized - запрос без валидной сессии
	ErrUnauthorized = &DomainError{
		Code:    CodeUnauthorized,
		Message: "authentication required",
	}

	// ErrInvalidInviteCode - лиги с таким кодом приглашения нет
	ErrInvalidInviteCode = &DomainError{
		Code:    CodeInvalidInviteCode,
		Message: "Invalid invite code",
		Field:   "inviteCode",
	}

	// ErrAlreadyExists - нарушено ограничение уникальности
	ErrAlreadyExists = &DomainError{
		Code:    CodeAlreadyExists,
		Message: "resource already exists",
	}

	// ErrValidation - используется только как цель для errors.Is
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "validation failed",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// ValidationError содержит сообщения об ошибках, сгруппированные по полям формы
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == CodeValidation
}
