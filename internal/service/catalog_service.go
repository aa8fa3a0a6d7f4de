package service

import (
	"errors"
	"fmt"

	"unicourse_backend/internal/model"
	"unicourse_backend/internal/repository"
	"unicourse_backend/internal/util"
	"unicourse_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CourseInput 目录导入的单条课程，向量一律从缺失状态开始
type CourseInput struct {
	Title             string   `json:"title" binding:"required"`
	University        string   `json:"university" binding:"required"`
	Field             string   `json:"field"`
	Description       string   `json:"description"`
	KeySubjects       []string `json:"keySubjects"`
	CareerProspects   []string `json:"careerProspects"`
	EntryRequirements string   `json:"entryRequirements"`
	Duration          string   `json:"duration"`
	Location          string   `json:"location"`
	AverageSalary     string   `json:"averageSalary"`
	EmploymentRate    string   `json:"employmentRate"`
}

type CatalogService struct {
	courses *repository.CourseRepository
}

func NewCatalogService(courses *repository.CourseRepository) *CatalogService {
	return &CatalogService{courses: courses}
}

func (s *CatalogService) List(page, limit int) ([]model.Course, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.courses.List(page, limit)
}

func (s *CatalogService) Get(id string) (*model.Course, error) {
	course, err := s.courses.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, util.PersistenceError("load course", err)
	}
	return course, nil
}

// Import 批量写入目录记录，返回写入条数
func (s *CatalogService) Import(inputs []CourseInput) (int, error) {
	if len(inputs) == 0 {
		return 0, fmt.Errorf("%w: empty course list", util.ErrInvalidInput)
	}

	courses := make([]model.Course, 0, len(inputs))
	for _, in := range inputs {
		courses = append(courses, model.Course{
			Title:             in.Title,
			University:        in.University,
			Field:             in.Field,
			Description:       in.Description,
			KeySubjects:       model.StringList(in.KeySubjects),
			CareerProspects:   model.StringList(in.CareerProspects),
			EntryRequirements: in.EntryRequirements,
			Duration:          in.Duration,
			Location:          in.Location,
			AverageSalary:     in.AverageSalary,
			EmploymentRate:    in.EmploymentRate,
		})
	}

	if err := s.courses.CreateBatch(courses); err != nil {
		return 0, util.PersistenceError("import courses", err)
	}

	logger.Log.Info("Imported courses into catalog", zap.Int("count", len(courses)))
	return len(courses), nil
}
