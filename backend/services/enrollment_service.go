package services

import (
	"errors"
	"fmt"

	"educa/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

// Enroll adds the course to the learner's enrollment set. Enrolling twice in
// the same course is a no-op: the insert lands on the composite unique index
// with ON CONFLICT DO NOTHING, so concurrent duplicate enrolls all succeed
// in a single atomic statement, without any in-process locking.
func (s *EnrollmentService) Enroll(userID, courseID uint) error {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return storageError("find user", err)
	}
	var course models.Course
	if err := s.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return storageError("find course", err)
	}

	enrollment := models.Enrollment{UserID: userID, CourseID: courseID}
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoNothing: true,
	}).Create(&enrollment).Error
	if err != nil {
		return storageError("create enrollment", err)
	}
	return nil
}

// SetProgress overwrites the learner's progress on one course. Values outside
// [0,100] are rejected, not clamped.
func (s *EnrollmentService) SetProgress(userID, courseID uint, progress int) error {
	if progress < 0 || progress > 100 {
		return NewValidationError(FieldError{
			Field: "progress",
			Error: fmt.Sprintf("must be between 0 and 100, got %d", progress),
		})
	}

	result := s.DB.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Update("progress", progress)
	if result.Error != nil {
		return storageError("update progress", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListForLearner returns the learner's enrollments with course data loaded.
func (s *EnrollmentService) ListForLearner(userID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := s.DB.Preload("Course").Where("user_id = ?", userID).Find(&enrollments).Error
	if err != nil {
		return nil, storageError("list enrollments", err)
	}
	return enrollments, nil
}
