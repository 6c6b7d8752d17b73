// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/features/users/dto"
	"pesantrenku_backend/internals/features/users/model"
	helper "pesantrenku_backend/internals/helpers"
	middleware "pesantrenku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register — owner only (dijaga middleware di route).
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var in dto.RegisterDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := model.User{
		UserName:     in.UserName,
		UserEmail:    strings.ToLower(strings.TrimSpace(in.UserEmail)),
		UserPassword: string(hash),
		UserRole:     in.UserRole,
		UserActive:   true,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email "+m.UserEmail+" sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Akun berhasil dibuat", dto.ToUserResponse(m))
}

// POST /api/auth/login — rate-limited di route.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if ok, resp := helper.ValidateStruct(c, in); !ok {
		return resp
	}

	var user model.User
	err := ctrl.DB.
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(in.UserEmail))).
		First(&user).Error
	if err != nil {
		if helper.IsNotFound(err) {
			// Pesan seragam supaya email terdaftar tidak bisa ditebak.
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !user.UserActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(in.UserPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.UserID.String(),
		"role": user.UserRole,
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int64((24 * time.Hour).Seconds()),
		"user":         dto.ToUserResponse(user),
	})
}

// GET /api/u/me — profil user dari token.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	raw, _ := c.Locals(middleware.LocUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.User
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToUserResponse(user))
}
