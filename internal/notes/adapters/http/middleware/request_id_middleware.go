// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"notekeeper/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// UserContextKey - ключ Locals с контекстом запроса.
const UserContextKey = "userContext"

// NewRequestIDMiddleware создает промежуточное ПО, которое привязывает
// идентификатор запроса к контексту и ответу.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(HeaderRequestID)

		requestCtx := logger.NewRequestIDContext(ctx.Context(), requestID)
		ctx.Locals(UserContextKey, requestCtx)

		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(HeaderRequestID, id)
		}

		return ctx.Next()
	}
}
