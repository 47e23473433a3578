package models

import "gorm.io/gorm"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	FullName     string `gorm:"not null"`
	Email        string `gorm:"unique;not null"` // stored lowercased
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"default:student"` // student, admin
	Enrollments  []Enrollment
}

// Enrollment links a user to a course. The composite unique index gives the
// relation set semantics: a second enroll for the same pair is a no-op.
type Enrollment struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID uint `gorm:"uniqueIndex:idx_user_course;not null"`
	Progress int  `gorm:"default:0"` // 0-100, per course
	Course   Course
}
