package services

import (
	"errors"
	"fmt"
	"time"

	"educa/backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentService struct {
	DB *gorm.DB
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{DB: db}
}

// CertificateView is the structured certificate content. The presentation
// layer decides how to format it (HTML, PDF).
type CertificateView struct {
	LearnerName string `json:"learner_name"`
	CourseTitle string `json:"course_title"`
	Headline    string `json:"headline"`
	Statement   string `json:"statement"`
}

// RenderCertificate builds the certificate content for a name/title pair.
// Pure function: identical inputs always produce identical output.
func RenderCertificate(learnerName, courseTitle string) CertificateView {
	return CertificateView{
		LearnerName: learnerName,
		CourseTitle: courseTitle,
		Headline:    "Certificate of Completion",
		Statement:   fmt.Sprintf("This certifies that %s has successfully completed the course %q.", learnerName, courseTitle),
	}
}

// IssuedCertificate pairs the rendered view with its persisted serial record.
type IssuedCertificate struct {
	SerialNumber string          `json:"serial_number"`
	IssuedAt     string          `json:"issued_at"`
	View         CertificateView `json:"certificate"`
}

// IssueCertificate issues a completion certificate for an enrollment. The
// learner must be enrolled in the course and have progress 100; certificates
// can no longer be minted for arbitrary name/course pairs.
func (s *DocumentService) IssueCertificate(userID, courseID uint) (IssuedCertificate, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return IssuedCertificate{}, ErrNotFound
		}
		return IssuedCertificate{}, storageError("find user", err)
	}
	var course models.Course
	if err := s.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return IssuedCertificate{}, ErrNotFound
		}
		return IssuedCertificate{}, storageError("find course", err)
	}

	var enrollment models.Enrollment
	err := s.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return IssuedCertificate{}, ErrNotFound
		}
		return IssuedCertificate{}, storageError("find enrollment", err)
	}
	if enrollment.Progress < 100 {
		return IssuedCertificate{}, ErrIncomplete
	}

	view := RenderCertificate(user.FullName, course.Title)
	cert := models.Certificate{
		UserID:       userID,
		CourseID:     courseID,
		SerialNumber: uuid.NewString(),
		LearnerName:  view.LearnerName,
		CourseTitle:  view.CourseTitle,
		IssuedAt:     time.Now().UTC(),
	}
	if err := s.DB.Create(&cert).Error; err != nil {
		return IssuedCertificate{}, storageError("create certificate", err)
	}

	return IssuedCertificate{
		SerialNumber: cert.SerialNumber,
		IssuedAt:     cert.IssuedAt.Format("2006-01-02"),
		View:         view,
	}, nil
}

// InvoiceLine is one enrolled course on the invoice.
type InvoiceLine struct {
	CourseTitle string  `json:"course_title"`
	Price       float64 `json:"price"`
}

// Invoice is the structured billing document for a learner's enrollments.
type Invoice struct {
	InvoiceNumber string        `json:"invoice_number"`
	LearnerName   string        `json:"learner_name"`
	LearnerEmail  string        `json:"learner_email"`
	Lines         []InvoiceLine `json:"lines"`
	Total         float64       `json:"total"`
}

// RenderInvoice builds the invoice for a learner: one line per enrolled
// course and the price sum. A learner with no enrollments gets a zero-line,
// zero-total invoice, not an error.
func (s *DocumentService) RenderInvoice(userID uint) (Invoice, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Invoice{}, ErrNotFound
		}
		return Invoice{}, storageError("find user", err)
	}

	var enrollments []models.Enrollment
	err := s.DB.Preload("Course").Where("user_id = ?", userID).Find(&enrollments).Error
	if err != nil {
		return Invoice{}, storageError("list enrollments", err)
	}

	invoice := Invoice{
		InvoiceNumber: uuid.NewString(),
		LearnerName:   user.FullName,
		LearnerEmail:  user.Email,
		Lines:         []InvoiceLine{},
	}
	for _, e := range enrollments {
		invoice.Lines = append(invoice.Lines, InvoiceLine{
			CourseTitle: e.Course.Title,
			Price:       e.Course.Price,
		})
		invoice.Total += e.Course.Price
	}
	return invoice, nil
}
