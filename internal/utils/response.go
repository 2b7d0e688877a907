package utils

import "github.com/gofiber/fiber/v2"

// Envelope is the common JSON shape for API responses.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// SendSuccess sends a 200 response with the given message and payload.
func SendSuccess(c *fiber.Ctx, message string, data interface{}) error {
	return SendSuccessWithStatus(c, fiber.StatusOK, message, data)
}

// SendCreated sends a 201 response with the given message and payload.
func SendCreated(c *fiber.Ctx, message string, data interface{}) error {
	return SendSuccessWithStatus(c, fiber.StatusCreated, message, data)
}

// SendSuccessWithStatus sends a success payload using the provided HTTP
// status code.
func SendSuccessWithStatus(c *fiber.Ctx, status int, message string, data interface{}) error {
	if message == "" {
		message = "success"
	}
	if status == 0 {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// SendError sends an error response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(Envelope{
		Success: false,
		Message: message,
	})
}
