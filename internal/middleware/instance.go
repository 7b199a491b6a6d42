// internal/middleware/instance.go
package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"fbcal_workspace/dto"
)

const (
	// InstanceHeader carries the hosting platform's signed instance blob on
	// every widget request.
	InstanceHeader = "X-Wix-Instance"

	LocalInstanceID  = "instance_id"
	LocalPermissions = "permissions"

	// OwnerPermission marks the site owner editing the page, as opposed to
	// an anonymous visitor.
	OwnerPermission = "OWNER"
)

type instanceClaims struct {
	InstanceID  string `json:"instanceId"`
	Permissions string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// VerifyInstance validates the signed instance header and stashes the
// instance id and permission string in locals. HS256 only.
func VerifyInstance(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(InstanceHeader)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "missing instance header"})
		}

		var claims instanceClaims
		token, err := jwt.ParseWithClaims(
			raw,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, fiber.ErrUnauthorized
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid || claims.InstanceID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "invalid instance"})
		}

		c.Locals(LocalInstanceID, claims.InstanceID)
		c.Locals(LocalPermissions, claims.Permissions)
		return c.Next()
	}
}

// RequireOwner gates the settings-panel and write routes to the site owner.
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		perms, _ := c.Locals(LocalPermissions).(string)
		if perms != OwnerPermission {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "owner permission required"})
		}
		return c.Next()
	}
}

// InstanceID reads the verified instance id off the request context.
func InstanceID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalInstanceID).(string)
	return id
}
