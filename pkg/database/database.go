package database

import (
	"fmt"
	"log"

	"unicourse_backend/internal/config"
	"unicourse_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Course{},
		&model.StudentResponse{},
		&model.Recommendation{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认课程目录（目录为空时写入，向量一律留空，由回填任务生成）
	var count int64
	db.Model(&model.Course{}).Count(&count)
	if count == 0 {
		for _, c := range DefaultCourses() {
			db.Create(&c)
		}
		log.Println("Seeded default course catalog")
	}

	return db, nil
}

// DefaultCourses 初始课程目录
func DefaultCourses() []model.Course {
	return []model.Course{
		{
			Title:             "BSc Computer Science",
			University:        "University of Amsterdam",
			Field:             "Computer Science",
			Description:       "A rigorous program covering algorithms, software engineering, systems and artificial intelligence, with a strong mathematical foundation.",
			KeySubjects:       model.StringList{"Algorithms", "Software Engineering", "Mathematics", "Artificial Intelligence"},
			CareerProspects:   model.StringList{"Software Engineer", "Data Engineer", "Systems Architect"},
			EntryRequirements: "Mathematics at pre-university level",
			Duration:          "3 years",
			Location:          "Amsterdam",
			AverageSalary:     "€55,000",
			EmploymentRate:    "94%",
		},
		{
			Title:             "BSc Psychology",
			University:        "Leiden University",
			Field:             "Behavioural Sciences",
			Description:       "Study of human behaviour, cognition and emotion, combining experimental methods with statistics and clinical perspectives.",
			KeySubjects:       model.StringList{"Cognitive Psychology", "Statistics", "Biopsychology", "Research Methods"},
			CareerProspects:   model.StringList{"Clinical Psychologist", "HR Specialist", "Researcher"},
			EntryRequirements: "General secondary education diploma",
			Duration:          "3 years",
			Location:          "Leiden",
			AverageSalary:     "€42,000",
			EmploymentRate:    "87%",
		},
		{
			Title:             "BSc Mechanical Engineering",
			University:        "Delft University of Technology",
			Field:             "Engineering",
			Description:       "Design, analysis and manufacturing of mechanical systems, from thermodynamics and fluid dynamics to robotics.",
			KeySubjects:       model.StringList{"Thermodynamics", "Mechanics", "Materials Science", "Robotics"},
			CareerProspects:   model.StringList{"Mechanical Engineer", "Design Engineer", "Project Manager"},
			EntryRequirements: "Mathematics and Physics at pre-university level",
			Duration:          "3 years",
			Location:          "Delft",
			AverageSalary:     "€52,000",
			EmploymentRate:    "95%",
		},
		{
			Title:             "BA Business Administration",
			University:        "Rotterdam School of Management",
			Field:             "Business",
			Description:       "Broad management education covering strategy, marketing, finance and organisational behaviour with international case work.",
			KeySubjects:       model.StringList{"Strategy", "Marketing", "Finance", "Organisational Behaviour"},
			CareerProspects:   model.StringList{"Business Consultant", "Product Manager", "Financial Analyst"},
			EntryRequirements: "General secondary education diploma, English proficiency",
			Duration:          "3 years",
			Location:          "Rotterdam",
			AverageSalary:     "€48,000",
			EmploymentRate:    "91%",
		},
		{
			Title:             "BSc Biomedical Sciences",
			University:        "Utrecht University",
			Field:             "Life Sciences",
			Description:       "Molecular and cellular foundations of health and disease, preparing for research careers in biomedicine.",
			KeySubjects:       model.StringList{"Cell Biology", "Genetics", "Immunology", "Pharmacology"},
			CareerProspects:   model.StringList{"Biomedical Researcher", "Lab Specialist", "Clinical Trial Coordinator"},
			EntryRequirements: "Biology and Chemistry at pre-university level",
			Duration:          "3 years",
			Location:          "Utrecht",
			AverageSalary:     "€40,000",
			EmploymentRate:    "85%",
		},
		{
			Title:             "BA Graphic Design",
			University:        "Royal Academy of Art, The Hague",
			Field:             "Arts",
			Description:       "Visual communication across print and digital media, with studio practice in typography, branding and interactive design.",
			KeySubjects:       model.StringList{"Typography", "Branding", "Interactive Design", "Art History"},
			CareerProspects:   model.StringList{"Graphic Designer", "Art Director", "UX Designer"},
			EntryRequirements: "Portfolio review",
			Duration:          "4 years",
			Location:          "The Hague",
			AverageSalary:     "€36,000",
			EmploymentRate:    "78%",
		},
	}
}
