package middleware

import (
	httpError "donation-service/src/pkg/http-error"
	"donation-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// VerifyAdminKey checks X-Admin-Key against a bcrypt hash. An empty hash
// leaves the admin routes open.
func VerifyAdminKey(keyHash string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if keyHash != "" {
			key := ctx.Get(HeaderAdminKey)
			if key == "" || bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)) != nil {
				errObj := httpError.NewUnauthorized()
				errObj.Message = "Clave de administrador inválida"
				return utils.ResponseError(errObj, ctx)
			}
		}
		GetClaim(ctx).Admin = true
		return ctx.Next()
	}
}
