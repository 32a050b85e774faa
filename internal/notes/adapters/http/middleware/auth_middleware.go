package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeeper/internal/notes/ports/services"
	"notekeeper/pkg/logger"
)

// UserIDKey - ключ Locals с идентификатором аутентифицированного пользователя.
const UserIDKey = "userID"

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

// NewAuthMiddleware создает промежуточное ПО, проверяющее Bearer токен
// и сохраняющее ID владельца в Locals. Само ядро сервиса не аутентифицирует:
// дальше операций доходит только проверенный userID.
func NewAuthMiddleware(tokenService services.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx, ok := ctx.Locals(UserContextKey).(context.Context)
		if !ok {
			requestCtx = ctx.Context()
		}
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   ErrorNoAuthHeader,
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   ErrorInvalidTokenFormat,
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokenService.ValidateAccessToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   ErrorInvalidToken,
			})
		}

		ctx.Locals(UserIDKey, userID)

		return ctx.Next()
	}
}
