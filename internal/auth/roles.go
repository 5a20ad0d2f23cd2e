package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rehab-center/clinic-service/internal/domain"
	apperrors "github.com/rehab-center/clinic-service/pkg/util"
)

// RequireRoles ensures the principal's role is in the allow-list.
// A missing principal is an authentication failure, not an
// authorization one; it should not happen when Handle is wired first.
func RequireRoles(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if _, exists := allowedSet[principal.Role]; !exists {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
