package model

// swagger:model StudentResponse
type StudentResponse struct {
	UUIDBase
	CurrentProgram    string `gorm:"type:text" json:"currentProgram"`
	FavoriteSubjects  string `gorm:"type:text" json:"favoriteSubjects"`
	DifficultSubjects string `gorm:"type:text" json:"difficultSubjects"`
	Strengths         string `gorm:"type:text" json:"strengths"`
	TaskPreference    string `gorm:"type:text" json:"taskPreference"`
	CareerInterests   string `gorm:"type:text" json:"careerInterests"`
	Embedding         Vector `gorm:"type:json" json:"-"`
}

func (StudentResponse) TableName() string {
	return "student_responses"
}
