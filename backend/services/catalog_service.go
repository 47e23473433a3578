package services

import (
	"errors"

	"educa/backend/models"
	"educa/backend/utils"

	"gorm.io/gorm"
)

type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

type CourseInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor"`
	Price       float64 `json:"price" validate:"gte=0"`
	VideoURL    string  `json:"video_url"`
	Level       string  `json:"level"`
	Thumbnail   string  `json:"thumbnail"`
}

func (s *CatalogService) Create(input CourseInput) (models.Course, error) {
	if fields := utils.ValidateStruct(input); fields != nil {
		return models.Course{}, fieldErrors(fields)
	}

	course := models.Course{
		Title:       input.Title,
		Description: input.Description,
		Instructor:  input.Instructor,
		Price:       input.Price,
		VideoURL:    input.VideoURL,
		Level:       input.Level,
		Thumbnail:   input.Thumbnail,
	}
	if err := s.DB.Create(&course).Error; err != nil {
		return models.Course{}, storageError("create course", err)
	}
	return course, nil
}

func (s *CatalogService) List() ([]models.Course, error) {
	var courses []models.Course
	if err := s.DB.Find(&courses).Error; err != nil {
		return nil, storageError("list courses", err)
	}
	return courses, nil
}

func (s *CatalogService) FindByID(id uint) (models.Course, error) {
	var course models.Course
	err := s.DB.First(&course, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Course{}, ErrNotFound
		}
		return models.Course{}, storageError("find course", err)
	}
	return course, nil
}

// UpdateVideo sets the lesson video pointer, the one course field that is
// mutable after creation.
func (s *CatalogService) UpdateVideo(id uint, videoURL string) (models.Course, error) {
	course, err := s.FindByID(id)
	if err != nil {
		return models.Course{}, err
	}
	course.VideoURL = videoURL
	if err := s.DB.Save(&course).Error; err != nil {
		return models.Course{}, storageError("update course video", err)
	}
	return course, nil
}

// Reset replaces the whole catalog with the given seed set in one
// transaction, so readers never observe the half-replaced state.
func (s *CatalogService) Reset(seed []CourseInput) error {
	for _, input := range seed {
		if fields := utils.ValidateStruct(input); fields != nil {
			return fieldErrors(fields)
		}
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Course{}).Error; err != nil {
			return storageError("clear catalog", err)
		}
		for _, input := range seed {
			course := models.Course{
				Title:       input.Title,
				Description: input.Description,
				Instructor:  input.Instructor,
				Price:       input.Price,
				VideoURL:    input.VideoURL,
				Level:       input.Level,
				Thumbnail:   input.Thumbnail,
			}
			if err := tx.Create(&course).Error; err != nil {
				return storageError("seed course", err)
			}
		}
		return nil
	})
}

// SampleCourses is the demo seed set used by the admin catalog reset.
func SampleCourses() []CourseInput {
	return []CourseInput{
		{
			Title:       "Cloud Engineering",
			Description: "Design and operate production workloads on modern cloud platforms.",
			Instructor:  "Stephen",
			Price:       550,
			Level:       "intermediate",
		},
		{
			Title:       "Full Stack Web Development",
			Description: "Build and ship complete web applications, from database to browser.",
			Instructor:  "Stephen",
			Price:       450,
			Level:       "beginner",
		},
		{
			Title:       "Data Structures & Algorithms",
			Description: "Interview-grade problem solving with practical coding drills.",
			Instructor:  "Priya",
			Price:       500,
			Level:       "advanced",
		},
	}
}
