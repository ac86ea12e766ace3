package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"dictapi/internal/service"
)

type credentialsForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Register creates an account.
// @Summary Register
// @Tags auth
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param username formData string true "username"
// @Param password formData string true "password"
// @Success 201 {object} model.User
// @Failure 400 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /auth/register [post]
func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f credentialsForm
		if err := c.BodyParser(&f); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
		}
		u, err := svc.Register(c.UserContext(), f.Username, f.Password)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(u)
	}
}

// Login issues a session token, both in the body and as an HTTP-only cookie.
// @Summary Login
// @Tags auth
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param username formData string true "username"
// @Param password formData string true "password"
// @Success 200 {object} service.Session
// @Failure 401 {object} errorPayload
// @Router /auth/login [post]
func Login(svc service.AuthService, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f credentialsForm
		if err := c.BodyParser(&f); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "bad request")
		}
		sess, err := svc.Login(c.UserContext(), f.Username, f.Password)
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    sess.Token,
			Path:     "/",
			Expires:  sess.ExpiresAt,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.JSON(sess)
	}
}

// Logout clears the session cookie.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} mutationResponse
// @Router /auth/logout [post]
func Logout(cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return done(c, fiber.StatusOK, nil)
	}
}
