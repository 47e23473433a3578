package services

import (
	"fmt"
	"testing"

	"educa/backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database per test so tests never share state.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// sqlite allows one writer; a single pooled connection keeps concurrent
	// test callers from tripping over busy errors.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Enrollment{},
		&models.Course{},
		&models.Certificate{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createCourse(t *testing.T, db *gorm.DB, title string, price float64) models.Course {
	t.Helper()

	course := models.Course{Title: title, Instructor: "Stephen", Price: price}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}
	return course
}

func createStudent(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()

	user, err := NewIdentityService(db).Register(RegisterInput{
		FullName: name,
		Email:    email,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("failed to register student: %v", err)
	}
	return user
}
