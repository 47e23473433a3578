package controllers

import (
	"educa/backend/config"
	"educa/backend/middleware"
	"educa/backend/models"
	"educa/backend/services"
	"educa/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type StudentsController struct {
	Identity   *services.IdentityService
	Enrollment *services.EnrollmentService
	Cfg        *config.Config
}

func NewStudentsController(db *gorm.DB, cfg *config.Config) *StudentsController {
	return &StudentsController{
		Identity:   services.NewIdentityService(db),
		Enrollment: services.NewEnrollmentService(db),
		Cfg:        cfg,
	}
}

// GetStudents godoc
// @Summary List the student roster
// @Description Optional ?q= filters by name or email substring
// @Tags admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/students [get]
func (sc *StudentsController) GetStudents(c *fiber.Ctx) error {
	users, err := sc.Identity.List(c.Query("q"))
	if err != nil {
		return serviceError(c, err)
	}

	result := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		result = append(result, fiber.Map{
			"id":        user.ID,
			"full_name": user.FullName,
			"email":     user.Email,
			"role":      user.Role,
		})
	}
	return utils.Success(c, fiber.StatusOK, result)
}

// DeleteStudent godoc
// @Summary Delete a student account
// @Description Deleting an unknown id succeeds with no effect
// @Tags admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /admin/students/{id} [delete]
func (sc *StudentsController) DeleteStudent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid student id")
	}

	if err := sc.Identity.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

// EnrollStudent godoc
// @Summary Enroll a student into a course
// @Description Requires an explicit course id; enrolling twice is a no-op
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/students/{id}/enroll [post]
func (sc *StudentsController) EnrollStudent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid student id")
	}

	var input struct {
		CourseID uint `json:"course_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.CourseID == 0 {
		return utils.BadRequest(c, "Missing course_id")
	}

	if err := sc.Enrollment.Enroll(id, input.CourseID); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"student_id": id,
		"course_id":  input.CourseID,
	})
}

// UpdateStudentProgress godoc
// @Summary Set a student's progress on a course
// @Description Progress is per enrollment and must be between 0 and 100
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/students/{id}/progress [put]
func (sc *StudentsController) UpdateStudentProgress(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid student id")
	}

	var input struct {
		CourseID uint `json:"course_id"`
		Progress int  `json:"progress"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.CourseID == 0 {
		return utils.BadRequest(c, "Missing course_id")
	}

	if err := sc.Enrollment.SetProgress(id, input.CourseID, input.Progress); err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"student_id": id,
		"course_id":  input.CourseID,
		"progress":   input.Progress,
	})
}

// GetMyCourses godoc
// @Summary List the authenticated student's enrollments
// @Tags courses
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security ApiKeyAuth
// @Router /me/courses [get]
func (sc *StudentsController) GetMyCourses(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	enrollments, err := sc.Enrollment.ListForLearner(userID)
	if err != nil {
		return serviceError(c, err)
	}

	result := make([]fiber.Map, 0, len(enrollments))
	for _, e := range enrollments {
		result = append(result, enrollmentPayload(e))
	}
	return utils.Success(c, fiber.StatusOK, result)
}

func enrollmentPayload(e models.Enrollment) fiber.Map {
	return fiber.Map{
		"course_id":  e.CourseID,
		"title":      e.Course.Title,
		"instructor": e.Course.Instructor,
		"price":      e.Course.Price,
		"video_url":  e.Course.VideoURL,
		"progress":   e.Progress,
	}
}
