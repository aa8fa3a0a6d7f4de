package model

// swagger:model Course
type Course struct {
	UUIDBase
	Title             string     `gorm:"size:255;not null" json:"title"`
	University        string     `gorm:"size:255;not null" json:"university"`
	Field             string     `gorm:"size:100;index" json:"field"`
	Description       string     `gorm:"type:text" json:"description"`
	KeySubjects       StringList `gorm:"type:json" json:"keySubjects"`
	CareerProspects   StringList `gorm:"type:json" json:"careerProspects"`
	EntryRequirements string     `gorm:"type:text" json:"entryRequirements"`
	Duration          string     `gorm:"size:100" json:"duration"`
	Location          string     `gorm:"size:255" json:"location"`
	AverageSalary     string     `gorm:"size:100" json:"averageSalary"`
	EmploymentRate    string     `gorm:"size:50" json:"employmentRate"`

	// 由回填任务写入一次，之后不再重算
	Embedding Vector `gorm:"type:json" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

// HasEmbedding 课程是否已具备向量，可参与排序
func (c *Course) HasEmbedding() bool {
	return len(c.Embedding) > 0
}
