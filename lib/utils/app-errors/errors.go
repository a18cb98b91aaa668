package apperrors

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type Kind string

const (
	KindNotFound          Kind = "not_found"
	KindValidation        Kind = "validation"
	KindDuplicate         Kind = "duplicate"
	KindInvalidTransition Kind = "invalid_transition"
	KindUnauthorized      Kind = "unauthorized"
	KindForbidden         Kind = "forbidden"
	KindUpstream          Kind = "upstream"
)

var kindHttpCode = map[Kind]int{
	KindNotFound:          fiber.StatusNotFound,
	KindValidation:        fiber.StatusBadRequest,
	KindDuplicate:         fiber.StatusConflict,
	KindInvalidTransition: fiber.StatusConflict,
	KindUnauthorized:      fiber.StatusUnauthorized,
	KindForbidden:         fiber.StatusForbidden,
	KindUpstream:          fiber.StatusInternalServerError,
}

// AppError ошибка с классом, по которому контроллер выбирает код ответа
type AppError struct {
	Kind    Kind
	Message string // сообщение для клиента
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) HttpCode() int {
	if code, ok := kindHttpCode[e.Kind]; ok {
		return code
	}
	return fiber.StatusInternalServerError
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(err error, kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *AppError {
	return New(KindNotFound, message)
}

func Validation(message string) *AppError {
	return New(KindValidation, message)
}

func Duplicate(message string) *AppError {
	return New(KindDuplicate, message)
}

func InvalidTransition(message string) *AppError {
	return New(KindInvalidTransition, message)
}

func Unauthorized(message string) *AppError {
	return New(KindUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return New(KindForbidden, message)
}

func Upstream(err error, message string) *AppError {
	return Wrap(err, KindUpstream, message)
}

// As извлекает AppError из цепочки, ошибки без класса считаются UpstreamFailure
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Upstream(err, "internal server error")
}

func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
