package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"afa_backend/internals/features/users/auth/dto"
	"afa_backend/internals/features/users/auth/model"
	"afa_backend/internals/features/users/auth/service"
	helper "afa_backend/internals/helpers"
	authmw "afa_backend/internals/middlewares/auth"
)

var validateAuth = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// ➕ Register (admin creates accounts)
// =============================
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserName:     body.Name,
		UserEmail:    strings.ToLower(strings.TrimSpace(body.Email)),
		UserPassword: string(hash),
		UserRole:     body.Role,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", dto.ToUserDTO(user))
}

// =============================
// 🔑 Login (email + password)
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctrl.DB.First(&user, "user_email = ? AND user_is_active = true", strings.ToLower(strings.TrimSpace(body.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.Password)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := service.CreateAccessToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}

	return helper.Success(c, "Login successful", dto.LoginResponse{Token: token, User: dto.ToUserDTO(user)})
}

// =============================
// 🔑 Google sign-in (public portal)
// =============================
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	identity, err := service.VerifyGoogleIDToken(body.IDToken)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	var user model.UserModel
	err = ctrl.DB.First(&user, "user_google_id = ?", identity.GoogleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// first visit: create a member account bound to the Google id
		user = model.UserModel{
			UserName:     identity.Name,
			UserEmail:    strings.ToLower(identity.Email),
			UserPassword: "!google-auth", // never a valid bcrypt hash
			UserRole:     authmw.RoleMember,
			UserGoogleID: &identity.GoogleID,
		}
		if err := ctrl.DB.Create(&user).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Email already registered")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
		}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}

	token, err := service.CreateAccessToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create session")
	}

	return helper.Success(c, "Login successful", dto.LoginResponse{Token: token, User: dto.ToUserDTO(user)})
}

// =============================
// 🚪 Logout (blacklist the presented token)
// =============================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := ""
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw = strings.TrimSpace(authz[7:])
	}
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "No token presented")
	}

	expiredAt := time.Now().Add(authmw.SessionTTL)
	if claims, ok := c.Locals(authmw.LocClaims).(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	if err := service.BlacklistToken(ctrl.DB, raw, expiredAt); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Logout failed")
	}

	return helper.Success(c, "Logged out", nil)
}

// =============================
// 👤 Me
// =============================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	return helper.Success(c, "OK", dto.ToUserDTO(user))
}
