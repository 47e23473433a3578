package controllers

import (
	"educa/backend/config"
	"educa/backend/middleware"
	"educa/backend/services"
	"educa/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DocumentsController struct {
	Documents *services.DocumentService
	Cfg       *config.Config
}

func NewDocumentsController(db *gorm.DB, cfg *config.Config) *DocumentsController {
	return &DocumentsController{
		Documents: services.NewDocumentService(db),
		Cfg:       cfg,
	}
}

// GetCertificate godoc
// @Summary Issue a completion certificate for one of the student's courses
// @Description The student must be enrolled and have progress 100
// @Tags documents
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /me/courses/{id}/certificate [get]
func (dc *DocumentsController) GetCertificate(c *fiber.Ctx) error {
	courseID, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	cert, err := dc.Documents.IssueCertificate(middleware.UserID(c), courseID)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, cert)
}

// GetInvoice godoc
// @Summary Render the student's invoice over all enrolled courses
// @Tags documents
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /me/invoice [get]
func (dc *DocumentsController) GetInvoice(c *fiber.Ctx) error {
	invoice, err := dc.Documents.RenderInvoice(middleware.UserID(c))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, invoice)
}
