package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey stores the request id in Fiber locals.
	RequestIDLocalKey = "request_id"
	// MaxRequestIDLength bounds an inbound id accepted as-is.
	MaxRequestIDLength = 128
)

// RequestID propagates the caller's X-Request-ID or assigns a fresh UUID.
// An inbound id that is empty, longer than MaxRequestIDLength, or contains
// anything but printable ASCII is replaced, since it is echoed into response
// headers and every log entry of the request.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if validRequestID(id) {
			// Header values alias the request buffer; the id outlives it in loggers.
			id = utils.CopyString(id)
		} else {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > MaxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
