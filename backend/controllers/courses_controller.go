package controllers

import (
	"strconv"

	"educa/backend/config"
	"educa/backend/services"
	"educa/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CoursesController struct {
	Catalog *services.CatalogService
	Cfg     *config.Config
}

func NewCoursesController(db *gorm.DB, cfg *config.Config) *CoursesController {
	return &CoursesController{
		Catalog: services.NewCatalogService(db),
		Cfg:     cfg,
	}
}

// GetCourses godoc
// @Summary List the course catalog
// @Tags courses
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /courses [get]
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	courses, err := cc.Catalog.List()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, courses)
}

// GetCourse godoc
// @Summary Get one course by id
// @Tags courses
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /courses/{id} [get]
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	course, err := cc.Catalog.FindByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/courses [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input services.CourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := cc.Catalog.Create(input)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusCreated, course)
}

// UpdateCourseVideo godoc
// @Summary Set the lesson video reference of a course
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/courses/{id}/video [put]
func (cc *CoursesController) UpdateCourseVideo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid course id")
	}

	var input struct {
		VideoURL string `json:"video_url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := cc.Catalog.UpdateVideo(id, input.VideoURL)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, course)
}

// ResetCatalog godoc
// @Summary Replace the whole catalog with the sample seed set
// @Tags admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/courses/reset [post]
func (cc *CoursesController) ResetCatalog(c *fiber.Ctx) error {
	seed := services.SampleCourses()

	// Callers may reset to their own seed set instead of the sample one.
	var input struct {
		Courses []services.CourseInput `json:"courses"`
	}
	if err := c.BodyParser(&input); err == nil && len(input.Courses) > 0 {
		seed = input.Courses
	}

	if err := cc.Catalog.Reset(seed); err != nil {
		return serviceError(c, err)
	}

	courses, err := cc.Catalog.List()
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, courses)
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}
