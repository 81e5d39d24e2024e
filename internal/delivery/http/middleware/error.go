package middleware

import (
	"errors"
	"fmt"

	"parish-match/internal/logger"
	"parish-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// AppError carries the status and public message a handler wants to answer
// with. Cause is logged for 5xx responses and never serialised.
type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

func BadRequest(message string, cause error) *AppError {
	return NewAppError(fiber.StatusBadRequest, message, nil, cause)
}

func Unauthorized(message string, cause error) *AppError {
	return NewAppError(fiber.StatusUnauthorized, message, nil, cause)
}

func NotFound(message string, cause error) *AppError {
	return NewAppError(fiber.StatusNotFound, message, nil, cause)
}

// Internal wraps an unexpected error so the error middleware logs it and
// answers with a generic 500.
func Internal(format string, args ...any) *AppError {
	return NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, fmt.Errorf(format, args...))
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(log *zap.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger.OrNop(log).Named("http")}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered",
					zap.String("rid", RequestID(c)),
					zap.String("path", c.Path()),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				err = response.Error(c, fiber.StatusInternalServerError, "", nil)
			}
		}()

		if err = c.Next(); err == nil {
			return nil
		}

		status, msg, data := publicError(err)
		if status >= fiber.StatusInternalServerError {
			m.logger.Error("request failed",
				zap.String("rid", RequestID(c)),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			// 5xx details stay in the log.
			msg, data = response.MessageInternalServerError, nil
		}
		return response.Error(c, status, msg, data)
	}
}

// publicError maps err to the status, message and payload a client sees.
// Anything that is neither an AppError nor a fiber.Error is a 500.
func publicError(err error) (int, string, any) {
	var (
		status  = fiber.StatusInternalServerError
		message string
		data    any
	)

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		status, message, data = appErr.StatusCode, appErr.Message, appErr.Data
	case errors.As(err, &fiberErr):
		status, message = fiberErr.Code, fiberErr.Message
	}

	if status < 400 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = response.DefaultMessage(status)
	}
	return status, message, data
}
