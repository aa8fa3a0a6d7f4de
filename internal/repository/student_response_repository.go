package repository

import (
	"unicourse_backend/internal/model"

	"gorm.io/gorm"
)

type StudentResponseRepository struct {
	DB *gorm.DB
}

func NewStudentResponseRepository(db *gorm.DB) *StudentResponseRepository {
	return &StudentResponseRepository{DB: db}
}

func (r *StudentResponseRepository) Create(resp *model.StudentResponse) error {
	return r.DB.Create(resp).Error
}

func (r *StudentResponseRepository) FindByID(id string) (*model.StudentResponse, error) {
	var resp model.StudentResponse
	err := r.DB.First(&resp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
