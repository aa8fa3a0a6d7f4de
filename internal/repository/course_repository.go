package repository

import (
	"unicourse_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) CreateBatch(courses []model.Course) error {
	if len(courses) == 0 {
		return nil
	}
	return r.DB.Create(&courses).Error
}

func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var c model.Course
	err := r.DB.First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) List(page, limit int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64
	query := r.DB.Model(&model.Course{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&courses).Error
	return courses, total, err
}

// FindWithEmbeddings 返回所有已有向量的课程，仅这些课程可参与排序
func (r *CourseRepository) FindWithEmbeddings() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("embedding IS NOT NULL").Order("created_at asc").Find(&courses).Error
	return courses, err
}

// FindMissingEmbeddings 返回所有缺失向量的课程，读取最新已提交状态
func (r *CourseRepository) FindMissingEmbeddings() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("embedding IS NULL").Order("created_at asc").Find(&courses).Error
	return courses, err
}

// UpdateEmbedding 单列写入，幂等。回填任务是唯一写入方
func (r *CourseRepository) UpdateEmbedding(id string, embedding model.Vector) error {
	return r.DB.Model(&model.Course{}).Where("id = ?", id).Update("embedding", embedding).Error
}

func (r *CourseRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Course{}).Count(&total).Error
	return total, err
}

func (r *CourseRepository) CountMissingEmbeddings() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Course{}).Where("embedding IS NULL").Count(&total).Error
	return total, err
}
