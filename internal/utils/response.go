package utils

import "github.com/gofiber/fiber/v2"

// APIResponse is the envelope every endpoint returns. Success mirrors the
// HTTP status class, Data carries the entity or screen snapshot, and Message
// holds the human-readable outcome the client surfaces in its toast.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// SendSuccess sends a 200 envelope. An empty message collapses to "success";
// list and fetch endpoints pass "" since the payload speaks for itself.
func SendSuccess(c *fiber.Ctx, message string, data interface{}) error {
	return SendSuccessWithStatus(c, fiber.StatusOK, message, data)
}

// SendSuccessWithStatus sends a success envelope with an explicit status,
// used by the create endpoints for 201.
func SendSuccessWithStatus(c *fiber.Ctx, status int, message string, data interface{}) error {
	if message == "" {
		message = "success"
	}

	return c.Status(status).JSON(APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// SendError sends a failure envelope; Data is always omitted on errors.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(APIResponse{
		Success: false,
		Message: message,
	})
}
