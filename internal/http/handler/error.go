package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"dictapi/internal/http/middleware"
	"dictapi/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// serviceErrors maps service sentinels to responses. Messages are shown to users as is.
var serviceErrors = []struct {
	err     error
	status  int
	code    string
	message string
}{
	{service.ErrTextRequired, fiber.StatusBadRequest, "TEXT_REQUIRED", "Text is required."},
	{service.ErrWordRequired, fiber.StatusBadRequest, "WORD_REQUIRED", "Word is required."},
	{service.ErrNoLemma, fiber.StatusBadRequest, "NO_LEMMA", "Word has no dictionary form."},
	{service.ErrInvalidURL, fiber.StatusBadRequest, "INVALID_URL", "URL must be an absolute http or https address."},
	{service.ErrCredentialsRequired, fiber.StatusBadRequest, "CREDENTIALS_REQUIRED", "Username and password are required."},
	{service.ErrTextTooLarge, fiber.StatusRequestEntityTooLarge, "TEXT_TOO_LARGE", "Text is too large."},
	{service.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect username or password."},
	{service.ErrUnauthenticated, fiber.StatusUnauthorized, "UNAUTHORIZED", "authentication required"},
	{service.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "forbidden"},
	{service.ErrConflict, fiber.StatusConflict, "CONFLICT", "Word already exists."},
	{service.ErrUsernameTaken, fiber.StatusConflict, "USERNAME_TAKEN", "Username is already registered."},
	{service.ErrFetchFailed, fiber.StatusBadGateway, "FETCH_FAILED", "Could not fetch the page."},
}

// writeServiceError translates a service error into the standard error response.
func writeServiceError(c *fiber.Ctx, err error) error {
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		msg := fmt.Sprintf("Word id %d doesn't exist.", nf.ID)
		if nf.Entity == service.EntityPhrase {
			msg = fmt.Sprintf("Phrase id %d for word doesn't exist.", nf.ID)
		}
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", msg)
	}
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			return writeError(c, se.status, se.code, se.message)
		}
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "authentication required")
		case fiber.StatusForbidden:
			return writeError(c, status, "FORBIDDEN", "forbidden")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusConflict:
			return writeError(c, status, "CONFLICT", "conflict")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
