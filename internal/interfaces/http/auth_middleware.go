package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/authz"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/jwt"
)

// Locals key para la identidad decodificada en Fiber.
const LocalIdentity = "identity"

// HeaderAccessToken cabecera secundaria que lleva el token crudo cuando no
// viene "Authorization: Bearer". Se consulta en ese orden fijo.
const HeaderAccessToken = "X-Access-Token"

// AuthMiddleware verifica la credencial: primero Authorization Bearer, luego
// X-Access-Token. Decodifica los claims y deja la Identity en c.Locals; no
// consulta la DB (los handlers que necesiten estado vivo lo buscan aparte).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "autenticación requerida"})
		}
		userID, role, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalIdentity, authz.Identity{SubjectID: userID, Role: role, Email: email})
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	return strings.TrimSpace(c.Get(HeaderAccessToken))
}

// RequireRole autoriza por pertenencia simple al conjunto de roles. Debe
// usarse DESPUÉS de AuthMiddleware.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := c.Locals(LocalIdentity).(authz.Identity)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "autenticación requerida"})
		}
		if err := authz.Authorize(id, allowed...); err != nil {
			if errors.Is(err, domain.ErrInvalidToken) {
				// sesión con rol ausente o desconocido: tratar como token inválido
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no lleva un rol válido"})
			}
			return writeError(c, err)
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) authz.Identity {
	id, _ := c.Locals(LocalIdentity).(authz.Identity)
	return id
}
