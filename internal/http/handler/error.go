package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"formpdf/internal/http/middleware"
	"formpdf/internal/service"
)

// ErrorResponse is the standardized error response body shared by every endpoint.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	Detail     string `json:"detail"`
	StatusCode int    `json:"status_code"`
}

const (
	detailInvalidCode = "document code must be 10 characters"
	detailNotFound    = "document not found"
	detailInternal    = "internal server error"
)

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response.
// detail must be safe to show to clients.
func writeError(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success:    false,
		Detail:     detail,
		StatusCode: status,
	})
}

// ErrorHandler returns a Fiber global error handler and is the only place
// errors are turned into responses. Unexpected errors are logged with their
// cause and reported to the client as a generic 500.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx, err error) error {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			return writeError(c, fiber.StatusUnprocessableEntity, verr.Detail())
		case errors.Is(err, service.ErrInvalidCode):
			return writeError(c, fiber.StatusBadRequest, detailInvalidCode)
		case errors.Is(err, service.ErrNotFound):
			return writeError(c, fiber.StatusNotFound, detailNotFound)
		}

		var ferr *fiber.Error
		if errors.As(err, &ferr) && ferr.Code < fiber.StatusInternalServerError {
			return writeError(c, ferr.Code, statusDetail(ferr.Code))
		}

		log.Error("unhandled error",
			zap.String("request_id", requestIDFromCtx(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return writeError(c, fiber.StatusInternalServerError, detailInternal)
	}
}

func statusDetail(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "bad request"
	case fiber.StatusNotFound:
		return "not found"
	case fiber.StatusMethodNotAllowed:
		return "method not allowed"
	case fiber.StatusRequestEntityTooLarge:
		return "request entity too large"
	case fiber.StatusUnprocessableEntity:
		return "invalid input data"
	default:
		return "request failed"
	}
}
