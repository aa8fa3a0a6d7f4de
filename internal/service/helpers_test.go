package service

import (
	"context"
	"math"
	"testing"

	"unicourse_backend/internal/model"
	"unicourse_backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB 每个测试独享的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Course{},
		&model.StudentResponse{},
		&model.Recommendation{},
	))
	return db
}

// fakeEmbedder 按调用顺序返回预置结果，记录收到的文本
type fakeEmbedder struct {
	embedFn func(text string) (model.Vector, error)
	texts   []string
	calls   int
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) (model.Vector, error) {
	f.calls++
	f.texts = append(f.texts, text)
	return f.embedFn(text)
}

func seedCourse(t *testing.T, db *gorm.DB, title string, embedding model.Vector) *model.Course {
	t.Helper()
	course := &model.Course{
		Title:           title,
		University:      "Test University",
		Field:           "Computer Science",
		Description:     "A course about " + title,
		KeySubjects:     model.StringList{"Algorithms", "Databases"},
		CareerProspects: model.StringList{"Engineer"},
		Duration:        "3 years",
		Location:        "Oslo",
		Embedding:       embedding,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

// unitVector2D 返回与 (1,0,0) 夹角余弦恰为 c 的单位向量
func unitVector2D(c float64) model.Vector {
	return model.Vector{c, math.Sqrt(1 - c*c), 0}
}

func newRecommendationFixture(t *testing.T, embedder Embedder) (*RecommendationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewRecommendationService(
		embedder,
		repository.NewCourseRepository(db),
		repository.NewStudentResponseRepository(db),
		repository.NewRecommendationRepository(db),
	)
	return svc, db
}
