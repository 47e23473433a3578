package models

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string
	Instructor  string
	Price       float64 `gorm:"default:0"`
	VideoURL    string  // opaque lesson pointer, played by the frontend
	Level       string  // beginner, intermediate, advanced
	Thumbnail   string
}

// Certificate is the persisted record of an issued completion certificate.
type Certificate struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	CourseID     uint   `gorm:"index;not null"`
	SerialNumber string `gorm:"unique;not null"`
	LearnerName  string
	CourseTitle  string
	IssuedAt     time.Time
}
