package model

// swagger:model Recommendation
type Recommendation struct {
	BaseModel
	StudentResponseID string           `gorm:"index;type:varchar(36);not null" json:"studentResponseId"`
	StudentResponse   *StudentResponse `gorm:"foreignKey:StudentResponseID;constraint:OnDelete:CASCADE" json:"-"`
	CourseID          string           `gorm:"index;type:varchar(36);not null" json:"courseId"`
	Course            *Course          `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	SimilarityScore   float64          `json:"similarityScore"`
	Rank              int              `gorm:"column:rank_order" json:"rank"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
