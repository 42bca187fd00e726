package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/resorcera/course_api/dto"
	"github.com/resorcera/course_api/shared"
	"github.com/valyala/fasthttp"
)

type UploadHandler struct {
	uploadSvc UploadServiceInterface
}

func NewUploadHandler(uploadSvc UploadServiceInterface) *UploadHandler {
	return &UploadHandler{uploadSvc: uploadSvc}
}

// @Summary Upload course PDF (Admin)
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param X-Admin-Password header string true "Admin password"
// @Param pdf formData file true "PDF file, at most 10MB"
// @Param courseId formData string true "Course ID"
// @Success 200 {object} dto.UploadPDFResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/upload-pdf [post]
func (h *UploadHandler) UploadPDF(c *fiber.Ctx) error {
	file, err := c.FormFile("pdf")
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return shared.NewMissingFieldError("pdf")
		}
		return shared.NewTypeMismatchError("Invalid multipart form")
	}

	if err := dto.ValidateFileUpload(dto.FileUploadFromHeader(file)); err != nil {
		return err
	}

	courseID := dto.SanitizeString(c.FormValue("courseId"), dto.MaxShortFieldLength)
	if courseID == "" {
		return shared.NewMissingFieldError("courseId")
	}

	fileName, err := h.uploadSvc.UploadPDF(c.UserContext(), courseID, file)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, fiber.Map{"fileName": fileName})
}
