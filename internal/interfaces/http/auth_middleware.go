package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-tiendas/internal/application/auth"
	"github.com/jhoicas/Inventario-tiendas/internal/domain"
)

// Locals keys para la identidad de la tienda en Fiber.
const (
	LocalStoreID   = "store_id"
	LocalStoreName = "store_name"
)

// Authenticator valida un token y devuelve la tienda; lo implementa auth.AuthUseCase.
type Authenticator interface {
	Authenticate(token string) (auth.Identity, error)
}

var _ Authenticator = (*auth.AuthUseCase)(nil)

// AuthMiddleware valida el Bearer Token JWT y carga StoreID y StoreName en c.Locals.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return writeError(c, domain.ErrMissingToken)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return writeError(c, domain.ErrInvalidToken)
		}
		ident, err := authn.Authenticate(strings.TrimSpace(parts[1]))
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalStoreID, ident.StoreID)
		c.Locals(LocalStoreName, ident.StoreName)
		return c.Next()
	}
}

// GetIdentity devuelve la tienda autenticada (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) auth.Identity {
	id, _ := c.Locals(LocalStoreID).(int64)
	name, _ := c.Locals(LocalStoreName).(string)
	return auth.Identity{StoreID: id, StoreName: name}
}
