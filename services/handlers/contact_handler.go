package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/resorcera/course_api/dto"
	"github.com/resorcera/course_api/shared"
)

type ContactHandler struct {
	contactSvc ContactServiceInterface
}

func NewContactHandler(contactSvc ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

// @Summary Contact form
// @Description Send a message to the site owners. A confirmation is mailed back to the sender.
// @Tags contact
// @Accept json
// @Produce json
// @Param message body dto.ContactRequest true "Message"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	req, err := dto.BindContactInput(c.Body())
	if err != nil {
		return err
	}

	if err := h.contactSvc.Submit(req); err != nil {
		return err
	}
	return shared.ResponseOK(c, fiber.Map{"message": "Emails sent successfully"})
}
