package middleware

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"trip-album/internal/domain"
	"trip-album/internal/service"
)

const (
	UserContextKey   = "user"
	UserIDContextKey = "user_id"
)

type bodyCredentials struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// AuthRequired authenticates a request either by Bearer access token or by
// the userId/password pair the album client sends in every request body
// (JSON or multipart form).
func AuthRequired(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if authHeader := c.Get("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"code":    "UNAUTHORIZED",
					"message": "Invalid authorization header format",
				})
			}

			claims, err := authService.ValidateAccessToken(parts[1])
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"code":    "UNAUTHORIZED",
					"message": "Invalid or expired token",
				})
			}

			user, err := authService.GetUserByID(c.Context(), claims.UserID)
			if err != nil || user == nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"code":    "UNAUTHORIZED",
					"message": "User not found",
				})
			}

			c.Locals(UserContextKey, user)
			c.Locals(UserIDContextKey, user.ID)
			return c.Next()
		}

		creds := extractCredentials(c)
		if creds.UserID == "" || creds.Password == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing credentials",
			})
		}

		user, err := authService.Authenticate(c.Context(), creds.UserID, creds.Password)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid credentials",
			})
		}

		c.Locals(UserContextKey, user)
		c.Locals(UserIDContextKey, user.ID)
		return c.Next()
	}
}

func extractCredentials(c *fiber.Ctx) bodyCredentials {
	var creds bodyCredentials
	if strings.HasPrefix(c.Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(c.Body(), &creds)
		return creds
	}
	creds.UserID = c.FormValue("userId")
	creds.Password = c.FormValue("password")
	return creds
}

func GetCurrentUser(c *fiber.Ctx) *domain.User {
	user, ok := c.Locals(UserContextKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

func GetCurrentUserID(c *fiber.Ctx) uuid.UUID {
	userID, ok := c.Locals(UserIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}
