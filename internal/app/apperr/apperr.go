package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind - класс ошибки, от которого зависит HTTP статус ответа
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindEmpty        Kind = "empty"
	KindValidation   Kind = "validation"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindUnexpected   Kind = "unexpected"
)

// Error - ошибка предметной области.
// Subject указывает, какой ключ не найден или не прошёл проверку (industry, market, product ...)
type Error struct {
	Kind    Kind
	Subject string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status возвращает HTTP статус для ошибки
func (e *Error) Status() int {
	return statusForKind(e.Kind)
}

func statusForKind(kind Kind) int {
	switch kind {
	case KindNotFound, KindEmpty:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(subject, format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Subject: subject, Message: fmt.Sprintf(format, args...)}
}

// Empty - ключ найден, но данных под ним нет (например отрасль без рынков)
func Empty(subject, format string, args ...any) *Error {
	return &Error{Kind: KindEmpty, Subject: subject, Message: fmt.Sprintf(format, args...)}
}

func Validation(subject, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Subject: subject, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// Unexpected оборачивает любую внутреннюю ошибку. Сообщение для клиента всегда общее
func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Message: "internal error", Err: err}
}

// KindOf определяет класс ошибки, всё неизвестное считается unexpected
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnexpected
}

// Is проверяет класс ошибки
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// SubjectOf возвращает Subject ошибки предметной области или пустую строку
func SubjectOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Subject
	}
	return ""
}

// PublicMessage - текст, который можно отдать клиенту без утечки внутренних деталей
func PublicMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind != KindUnexpected {
		return ae.Message
	}
	return "Внутренняя ошибка сервера"
}

// StatusOf возвращает HTTP статус для произвольной ошибки
func StatusOf(err error) int {
	return statusForKind(KindOf(err))
}
