package services

import (
	"crypto/subtle"
	"errors"
	"os"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/resorcera/course_api/middleware"
	"github.com/resorcera/course_api/shared"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const ADMIN_AUTH_SVC = "admin_auth_svc"

// AdminAuthService compares a caller supplied password against ADMIN_PASSWORD_HASH
// (bcrypt) or, when no hash is set, ADMIN_PASSWORD.
type AdminAuthService struct {
	context.DefaultService

	password     string
	passwordHash []byte
}

func NewAdminAuthService(password, passwordHash string) *AdminAuthService {
	return &AdminAuthService{password: password, passwordHash: []byte(passwordHash)}
}

func (svc AdminAuthService) Id() string {
	return ADMIN_AUTH_SVC
}

func (svc *AdminAuthService) Configure(ctx *context.Context) error {
	svc.password = os.Getenv("ADMIN_PASSWORD")
	svc.passwordHash = []byte(os.Getenv("ADMIN_PASSWORD_HASH"))
	return svc.DefaultService.Configure(ctx)
}

func (svc *AdminAuthService) Start() error {
	if !svc.Configured() {
		log.Warn("Neither ADMIN_PASSWORD nor ADMIN_PASSWORD_HASH is set, admin routes will refuse every request")
	}
	return nil
}

func (svc *AdminAuthService) Shutdown() {}

func (svc *AdminAuthService) Configured() bool {
	return len(svc.passwordHash) > 0 || svc.password != ""
}

// VerifyPassword returns nil on a match and a *shared.AppError otherwise.
func (svc *AdminAuthService) VerifyPassword(password string) error {
	if password == "" {
		return shared.NewValidationError(shared.KindMissingField, "password", "Password is required")
	}

	if !svc.Configured() {
		log.Error("Admin password is not configured")
		return shared.NewInternalError(errors.New("admin password not configured"), "Server configuration error")
	}

	if len(svc.passwordHash) > 0 {
		if err := bcrypt.CompareHashAndPassword(svc.passwordHash, []byte(password)); err != nil {
			return shared.NewUnauthorizedError("Invalid password")
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(svc.password), []byte(password)) != 1 {
		return shared.NewUnauthorizedError("Invalid password")
	}
	return nil
}

// Login is the admin dashboard sign-in check.
func (svc *AdminAuthService) Login(password string) error {
	if err := svc.VerifyPassword(password); err != nil {
		return err
	}
	log.Info("Admin authenticated")
	return nil
}

func (svc *AdminAuthService) RequireAdmin() fiber.Handler {
	return middleware.RequireAdmin(svc)
}
