package middleware

import (
	"donation-service/src/pkg/token"

	"github.com/gofiber/fiber/v2"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderSessionID = "X-Session-ID"
	HeaderAdminKey  = "X-Admin-Key"

	claimKey = "claim"
)

// NewIdentity resolves the donor a request acts for. Requests without an
// X-User-ID header act for defaultUserID.
func NewIdentity(defaultUserID string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := ctx.Get(HeaderUserID)
		if userID == "" {
			userID = defaultUserID
		}
		ctx.Locals(claimKey, &token.Claim{
			Iss: "donation-service",
			Metadata: token.Metadata{
				UserID:    userID,
				SessionID: ctx.Get(HeaderSessionID),
			},
		})
		return ctx.Next()
	}
}

func GetClaim(ctx *fiber.Ctx) *token.Claim {
	if claim, ok := ctx.Locals(claimKey).(*token.Claim); ok {
		return claim
	}
	return &token.Claim{}
}

func GetUser(ctx *fiber.Ctx) *token.Metadata {
	return &GetClaim(ctx).Metadata
}
