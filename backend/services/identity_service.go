package services

import (
	"errors"
	"strings"

	"educa/backend/models"
	"educa/backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IdentityService struct {
	DB *gorm.DB
}

func NewIdentityService(db *gorm.DB) *IdentityService {
	return &IdentityService{DB: db}
}

type RegisterInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (s *IdentityService) Register(input RegisterInput) (models.User, error) {
	if fields := utils.ValidateStruct(input); fields != nil {
		return models.User{}, fieldErrors(fields)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return models.User{}, storageError("count users", err)
	}
	if count > 0 {
		return models.User{}, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		FullName:     input.FullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return models.User{}, storageError("create user", err)
	}
	return user, nil
}

func (s *IdentityService) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, storageError("find user by email", err)
	}
	return user, nil
}

func (s *IdentityService) FindByID(id uint) (models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, storageError("find user by id", err)
	}
	return user, nil
}

// Authenticate checks the email/password pair. Unknown email and wrong
// password both come back as ErrUnauthorized so callers cannot probe for
// registered addresses.
func (s *IdentityService) Authenticate(email, password string) (models.User, error) {
	user, err := s.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.User{}, ErrUnauthorized
		}
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrUnauthorized
	}
	return user, nil
}

// Delete removes a learner and their enrollments. Deleting an unknown id is
// not an error; the operation just does nothing.
func (s *IdentityService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return storageError("delete enrollments", err)
		}
		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return storageError("delete user", err)
		}
		return nil
	})
}

// List returns the student roster, optionally filtered by a case-insensitive
// substring match over name and email. No ordering is guaranteed.
func (s *IdentityService) List(filter string) ([]models.User, error) {
	query := s.DB.Model(&models.User{})
	if filter != "" {
		like := "%" + strings.ToLower(filter) + "%"
		query = query.Where("LOWER(full_name) LIKE ? OR email LIKE ?", like, like)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, storageError("list users", err)
	}
	return users, nil
}

// EnsureAdmin creates the configured admin account if it does not exist yet.
// Called once at startup; an existing account is left untouched.
func (s *IdentityService) EnsureAdmin(fullName, email, password string) error {
	_, err := s.FindByEmail(email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		FullName:     fullName,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		return storageError("create admin", err)
	}
	return nil
}

func fieldErrors(fields map[string]string) error {
	ferrs := make([]FieldError, 0, len(fields))
	for field, tag := range fields {
		ferrs = append(ferrs, FieldError{Field: field, Error: tag})
	}
	return NewValidationError(ferrs...)
}
