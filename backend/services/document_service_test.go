package services

import (
	"testing"

	"educa/backend/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderCertificateIsPure(t *testing.T) {
	first := RenderCertificate("Asha Rao", "Cloud Engineering")
	second := RenderCertificate("Asha Rao", "Cloud Engineering")

	assert.Equal(t, first, second)
	assert.Equal(t, "Asha Rao", first.LearnerName)
	assert.Equal(t, "Cloud Engineering", first.CourseTitle)
	assert.Contains(t, first.Statement, "Asha Rao")
	assert.Contains(t, first.Statement, "Cloud Engineering")
}

func TestIssueCertificateRequiresCompletion(t *testing.T) {
	db := testDB(t)
	docs := NewDocumentService(db)
	enrollment := NewEnrollmentService(db)

	user := createStudent(t, db, "Asha Rao", "asha@example.com")
	course := createCourse(t, db, "Cloud Engineering", 550)

	// not enrolled at all
	_, err := docs.IssueCertificate(user.ID, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, enrollment.Enroll(user.ID, course.ID))
	assert.NoError(t, enrollment.SetProgress(user.ID, course.ID, 60))

	// enrolled but incomplete
	_, err = docs.IssueCertificate(user.ID, course.ID)
	assert.ErrorIs(t, err, ErrIncomplete)

	assert.NoError(t, enrollment.SetProgress(user.ID, course.ID, 100))

	cert, err := docs.IssueCertificate(user.ID, course.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Asha Rao", cert.View.LearnerName)
	assert.Equal(t, "Cloud Engineering", cert.View.CourseTitle)
	assert.NotEmpty(t, cert.SerialNumber)
	assert.NotEmpty(t, cert.IssuedAt)

	// the persisted record carries its own issue timestamp
	var stored models.Certificate
	assert.NoError(t, db.Where("serial_number = ?", cert.SerialNumber).First(&stored).Error)
	assert.False(t, stored.IssuedAt.IsZero())
}

func TestIssueCertificateUnknownIDs(t *testing.T) {
	db := testDB(t)
	docs := NewDocumentService(db)

	user := createStudent(t, db, "Asha Rao", "asha@example.com")
	course := createCourse(t, db, "Cloud Engineering", 550)

	_, err := docs.IssueCertificate(9999, course.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = docs.IssueCertificate(user.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRenderInvoiceTotals(t *testing.T) {
	db := testDB(t)
	docs := NewDocumentService(db)
	enrollment := NewEnrollmentService(db)

	user := createStudent(t, db, "Asha Rao", "asha@example.com")
	web := createCourse(t, db, "Full Stack Web Development", 450)
	cloud := createCourse(t, db, "Cloud Engineering", 550)

	assert.NoError(t, enrollment.Enroll(user.ID, web.ID))
	assert.NoError(t, enrollment.Enroll(user.ID, cloud.ID))

	invoice, err := docs.RenderInvoice(user.ID)
	assert.NoError(t, err)
	assert.Len(t, invoice.Lines, 2)
	assert.EqualValues(t, 1000, invoice.Total)
	assert.Equal(t, "Asha Rao", invoice.LearnerName)
	assert.NotEmpty(t, invoice.InvoiceNumber)
}

func TestRenderInvoiceEmptyEnrollments(t *testing.T) {
	db := testDB(t)
	docs := NewDocumentService(db)

	user := createStudent(t, db, "Asha Rao", "asha@example.com")

	invoice, err := docs.RenderInvoice(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, invoice.Lines)
	assert.EqualValues(t, 0, invoice.Total)
}

func TestRenderInvoiceUnknownLearner(t *testing.T) {
	docs := NewDocumentService(testDB(t))

	_, err := docs.RenderInvoice(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
