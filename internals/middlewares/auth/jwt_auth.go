package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Locals keys hydrated by AuthJWT.
const (
	LocUserID = "user_id"
	LocRole   = "user_role"
	LocEmail  = "user_email"
	LocClaims = "jwt_claims"
)

// Sessions live 24 hours, counted from login. The check happens at read
// time: a token presented after the window is rejected even if the exp
// claim were missing.
const SessionTTL = 24 * time.Hour

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(rawToken string) (bool, error) // true if revoked
	AllowCookieFallback bool                                // use cookie access_token when no Bearer
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		// 1) Token from Authorization: Bearer xxx (or cookie if allowed)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Blacklist check. A lookup failure rejects the request:
		// revocation must not fail open when the store is down.
		if o.BlacklistChecker != nil {
			black, err := o.BlacklistChecker(raw)
			if err != nil {
				return fiber.NewError(fiber.StatusServiceUnavailable, "Session check unavailable")
			}
			if black {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
			}
		}

		// 3) Parse + verify algorithm
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// 4) Session window: iat + 24h must not be in the past
		if iat, ok := claims["iat"].(float64); ok {
			if time.Since(time.Unix(int64(iat), 0)) > SessionTTL {
				return fiber.NewError(fiber.StatusUnauthorized, "Session expired")
			}
		}

		c.Locals(LocClaims, claims)

		if v := strClaim(claims, "role"); v != "" {
			c.Locals(LocRole, v)
		}
		if v := strClaim(claims, "email"); v != "" {
			c.Locals(LocEmail, v)
		}
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(LocUserID, strClaim(claims, "sub"))
		}

		// user_id must be a UUID, fail fast here instead of inside handlers
		if s, ok := c.Locals(LocUserID).(string); ok {
			if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid user id")
			}
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// UserID returns the authenticated user's id from locals.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	s, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}
