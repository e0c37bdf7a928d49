package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"afa_backend/internals/configs"
	"afa_backend/internals/features/users/auth/model"
	authmw "afa_backend/internals/middlewares/auth"
)

// CreateAccessToken signs a session token for a user. Sessions last 24h
// from login; both exp and the iat-based check in the middleware enforce it.
func CreateAccessToken(u model.UserModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":    u.UserID.String(),
		"email": u.UserEmail,
		"role":  u.UserRole,
		"iat":   now.Unix(),
		"exp":   now.Add(authmw.SessionTTL).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(configs.JWTSecret))
}

// BlacklistToken revokes a raw token until its expiry has long passed.
func BlacklistToken(db *gorm.DB, rawToken string, expiredAt time.Time) error {
	entry := model.TokenBlacklist{
		Token:     rawToken,
		ExpiredAt: expiredAt,
	}
	return db.Create(&entry).Error
}

// IsTokenBlacklisted is plugged into the auth middleware.
func IsTokenBlacklisted(db *gorm.DB) func(rawToken string) (bool, error) {
	return func(rawToken string) (bool, error) {
		var count int64
		err := db.Model(&model.TokenBlacklist{}).
			Where("token = ?", rawToken).
			Count(&count).Error
		return count > 0, err
	}
}
