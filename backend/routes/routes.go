package routes

import (
	"educa/backend/config"
	"educa/backend/controllers"
	"educa/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/admin/login", authController.AdminLogin)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// Public catalog browse
	coursesController := controllers.NewCoursesController(db, cfg)
	app.Get("/api/courses", coursesController.GetCourses)
	app.Get("/api/courses/:id", coursesController.GetCourse)

	// Student routes
	studentsController := controllers.NewStudentsController(db, cfg)
	documentsController := controllers.NewDocumentsController(db, cfg)
	me := app.Group("/api/me", authMiddleware)
	me.Get("/courses", studentsController.GetMyCourses)
	me.Get("/courses/:id/certificate", documentsController.GetCertificate)
	me.Get("/invoice", documentsController.GetInvoice)

	// Admin routes for the student roster and the enrollment ledger
	adminStudents := app.Group("/api/admin/students", adminMiddleware)
	adminStudents.Get("/", studentsController.GetStudents)
	adminStudents.Delete("/:id", studentsController.DeleteStudent)
	adminStudents.Post("/:id/enroll", studentsController.EnrollStudent)
	adminStudents.Put("/:id/progress", studentsController.UpdateStudentProgress)

	// Admin routes for the catalog
	adminCourses := app.Group("/api/admin/courses", adminMiddleware)
	adminCourses.Post("/", coursesController.CreateCourse)
	adminCourses.Post("/reset", coursesController.ResetCatalog)
	adminCourses.Put("/:id/video", coursesController.UpdateCourseVideo)
}
