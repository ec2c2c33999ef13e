package auth

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const ContextUserIDKey = "user_id"

// OptionalJWTMiddleware извлекает user_id из валидного bearer-токена.
// Запрос без токена или с невалидным токеном остается анонимным:
// аккаунтов в сервисе нет, личность нужна только для пометки документов.
func OptionalJWTMiddleware(manager *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !manager.Enabled() {
				return next(c)
			}

			tokenString := bearerToken(c)
			if tokenString == "" {
				return next(c)
			}

			claims, err := manager.ParseToken(tokenString)
			if err != nil {
				return next(c)
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return next(c)
			}

			c.Set(ContextUserIDKey, userID)
			return next(c)
		}
	}
}

// UserIDFromContext извлекает идентификатор пользователя из контекста.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	value := c.Get(ContextUserIDKey)
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
