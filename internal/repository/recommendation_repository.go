package repository

import (
	"unicourse_backend/internal/model"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

// CreateBatch 一次性写入一份推荐集合，与其所属的 StudentResponse 同次调用产生
func (r *RecommendationRepository) CreateBatch(recs []model.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	return r.DB.Create(&recs).Error
}

func (r *RecommendationRepository) FindByStudentResponse(responseID string) ([]model.Recommendation, error) {
	var recs []model.Recommendation
	err := r.DB.Preload("Course").
		Where("student_response_id = ?", responseID).
		Order("rank_order asc").
		Find(&recs).Error
	return recs, err
}

// DeleteByStudentResponse 级联清理，StudentResponse 拥有其推荐集合
func (r *RecommendationRepository) DeleteByStudentResponse(responseID string) error {
	return r.DB.Where("student_response_id = ?", responseID).Delete(&model.Recommendation{}).Error
}
