package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resorcera/course_api/dto"
	"github.com/resorcera/course_api/shared"
)

type AdminHandler struct {
	authSvc AdminAuthServiceInterface
}

func NewAdminHandler(authSvc AdminAuthServiceInterface) *AdminHandler {
	return &AdminHandler{authSvc: authSvc}
}

// @Summary Admin login
// @Description Check the admin dashboard password
// @Tags admin
// @Accept json
// @Produce json
// @Param login body dto.AdminLoginRequest true "Password"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/auth/admin [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if body := c.Body(); len(body) > 0 {
		if err := shared.JSONUnmarshal(body, &req); err != nil {
			return shared.NewTypeMismatchError("Invalid request body")
		}
	}

	if err := h.authSvc.Login(req.Password); err != nil {
		return err
	}
	return shared.ResponseOK(c, fiber.Map{"authenticated": true})
}
