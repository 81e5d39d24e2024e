// Package response writes the JSON envelope every endpoint answers with.
package response

import "github.com/gofiber/fiber/v3"

type SemanticResponse struct {
	Success bool   `json:"success"`
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "not found"
	MessageServiceUnavailable  = "service unavailable"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

var defaultMessages = map[int]string{
	fiber.StatusOK:                 MessageOK,
	fiber.StatusBadRequest:         MessageBadRequest,
	fiber.StatusUnauthorized:       MessageUnauthorized,
	fiber.StatusForbidden:          MessageForbidden,
	fiber.StatusNotFound:           MessageNotFound,
	fiber.StatusServiceUnavailable: MessageServiceUnavailable,
}

func Success(c fiber.Ctx, status int, message string, data any) error {
	return write(c, true, status, message, data)
}

func Error(c fiber.Ctx, status int, message string, data any) error {
	return write(c, false, status, message, data)
}

// DefaultMessage is the message used when a handler supplies none.
// Statuses outside 100..599 are treated as 500.
func DefaultMessage(status int) string {
	status = clampStatus(status)
	if msg, ok := defaultMessages[status]; ok {
		return msg
	}
	if status >= fiber.StatusInternalServerError {
		return MessageInternalServerError
	}
	return MessageError
}

func write(c fiber.Ctx, success bool, status int, message string, data any) error {
	status = clampStatus(status)
	if message == "" {
		message = DefaultMessage(status)
	}
	return c.Status(status).JSON(SemanticResponse{
		Success: success,
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func clampStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}
