package services

import (
	"sync"
	"testing"

	"educa/backend/models"

	"github.com/stretchr/testify/assert"
)

func TestEnrollIsIdempotent(t *testing.T) {
	db := testDB(t)
	svc := NewEnrollmentService(db)

	user := createStudent(t, db, "Asha Rao", "asha@example.com")
	course := createCourse(t, db, "Cloud Engineering", 550)

	assert.NoError(t, svc.Enroll(user.ID, course.ID))
	assert.NoError(t, svc.Enroll(user.ID, course.ID))

	var count int64
	err := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count).Error
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestEnrollSucceedsWhenPairAlreadyStored(t *testing.T) {
	db := testDB(t)
	svc := NewEnrollmentService(db)

	user := createStudent(t, db, "Asha Rao", "asha@example.com")
	course := createCourse(t, db, "Cloud Engineering", 550)

	// The pair lands in the store between the caller's existence checks and
	// its insert, as a racing enroll would leave it. The insert must resolve
	// the unique-index conflict to success, not surface a duplicate-key error.
	existing := models.Enrollment{UserID: user.ID, CourseID: course.ID, Progress: 40}
	assert.NoError(t, db.Create(&existing).Error)

	assert.NoError(t, svc.Enroll(user.ID, course.ID))

	var enrollments []models.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).Find(&enrollments).Error
	assert.NoError(t, err)
	assert.Len(t, enrollments, 1)
	// the existing membership is untouched
	assert.Equal(t, 40, enrollments[0].Progress)
}

func TestEnrollConcurrentDuplicates(t *testing.T) {
	db := testDB(t)
	svc := NewEnrollmentService(db)

	user := createStudent(t, db, "Asha Rao", "asha@example.com")
	course := createCourse(t, db, "Cloud Engineering", 550)

	const callers = 4
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Enroll(user.ID, course.ID)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "caller %d must observe idempotent success", i)
	}

	var count int64
	err := db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count).Error
	assert.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestEnrollUnknownIDs(t *testing.T) {
	db := testDB(t)
	svc := NewEnrollmentService(db)

	user := createStudent(t, db, "Asha Rao", "asha@example.com")
	course := createCourse(t, db, "Cloud Engineering", 550)

	assert.ErrorIs(t, svc.Enroll(9999, course.ID), ErrNotFound)
	assert.ErrorIs(t, svc.Enroll(user.ID, 9999), ErrNotFound)
}

func TestSetProgressBoundaries(t *testing.T) {
	db := testDB(t)
	svc := NewEnrollmentService(db)

	user := createStudent(t, db, "Asha Rao", "asha@example.com")
	course := createCourse(t, db, "Cloud Engineering", 550)
	assert.NoError(t, svc.Enroll(user.ID, course.ID))

	var verr *ValidationError
	assert.ErrorAs(t, svc.SetProgress(user.ID, course.ID, -1), &verr)
	assert.ErrorAs(t, svc.SetProgress(user.ID, course.ID, 101), &verr)

	assert.NoError(t, svc.SetProgress(user.ID, course.ID, 0))
	assert.NoError(t, svc.SetProgress(user.ID, course.ID, 100))

	enrollments, err := svc.ListForLearner(user.ID)
	assert.NoError(t, err)
	assert.Len(t, enrollments, 1)
	assert.Equal(t, 100, enrollments[0].Progress)
}

func TestSetProgressRequiresEnrollment(t *testing.T) {
	db := testDB(t)
	svc := NewEnrollmentService(db)

	user := createStudent(t, db, "Asha Rao", "asha@example.com")
	course := createCourse(t, db, "Cloud Engineering", 550)

	// not enrolled yet
	assert.ErrorIs(t, svc.SetProgress(user.ID, course.ID, 50), ErrNotFound)
}

func TestNewEnrollmentStartsAtZero(t *testing.T) {
	db := testDB(t)
	svc := NewEnrollmentService(db)

	user := createStudent(t, db, "Asha Rao", "asha@example.com")
	course := createCourse(t, db, "Cloud Engineering", 550)
	assert.NoError(t, svc.Enroll(user.ID, course.ID))

	enrollments, err := svc.ListForLearner(user.ID)
	assert.NoError(t, err)
	assert.Len(t, enrollments, 1)
	assert.Equal(t, 0, enrollments[0].Progress)
	assert.Equal(t, "Cloud Engineering", enrollments[0].Course.Title)
}
