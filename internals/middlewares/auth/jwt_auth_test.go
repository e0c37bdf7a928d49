package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func TestAuthJWTBlacklistLookupFailureRejects(t *testing.T) {
	app := guardedApp(AuthJWTOpts{
		Secret: testSecret,
		BlacklistChecker: func(string) (bool, error) {
			return false, errors.New("store down")
		},
	})

	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, testSecret, time.Now(), nil))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("test request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusServiceUnavailable)
	}
}

func signToken(t *testing.T, secret string, issuedAt time.Time, extra jwt.MapClaims) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":    uuid.New().String(),
		"email": "membre@afa.test",
		"role":  "member",
		"iat":   issuedAt.Unix(),
		"exp":   issuedAt.Add(SessionTTL).Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return raw
}

func guardedApp(opts AuthJWTOpts) *fiber.App {
	app := fiber.New()
	app.Get("/p", AuthJWT(opts), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthJWT(t *testing.T) {
	revoked := signToken(t, testSecret, time.Now(), nil)

	opts := AuthJWTOpts{
		Secret: testSecret,
		BlacklistChecker: func(raw string) (bool, error) {
			return raw == revoked, nil
		},
		AllowCookieFallback: true,
	}

	cases := []struct {
		name       string
		token      string
		viaCookie  bool
		wantStatus int
	}{
		{"fresh token passes", signToken(t, testSecret, time.Now(), nil), false, fiber.StatusOK},
		{"cookie fallback passes", signToken(t, testSecret, time.Now(), nil), true, fiber.StatusOK},
		{"no token", "", false, fiber.StatusUnauthorized},
		{"wrong secret", signToken(t, "other-secret", time.Now(), nil), false, fiber.StatusUnauthorized},
		{"revoked token", revoked, false, fiber.StatusUnauthorized},
		{
			"session older than 24h rejected even with future exp",
			signToken(t, testSecret, time.Now().Add(-25*time.Hour), jwt.MapClaims{
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			false, fiber.StatusUnauthorized,
		},
		{
			"token just inside the window passes",
			signToken(t, testSecret, time.Now().Add(-23*time.Hour), jwt.MapClaims{
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			false, fiber.StatusOK,
		},
		{
			"non-uuid user id rejected",
			signToken(t, testSecret, time.Now(), jwt.MapClaims{"id": "42"}),
			false, fiber.StatusUnauthorized,
		},
	}

	app := guardedApp(opts)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/p", nil)
			if tc.token != "" {
				if tc.viaCookie {
					req.AddCookie(&http.Cookie{Name: "access_token", Value: tc.token})
				} else {
					req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tc.token)
				}
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("test request failed: %v", err)
			}
			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
		})
	}
}
