package repository

import (
	"fmt"
	"testing"

	"unicourse_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

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

func newCourse(title string, embedding model.Vector) *model.Course {
	return &model.Course{
		Title:       title,
		University:  "Test University",
		Field:       "Computer Science",
		KeySubjects: model.StringList{"Algorithms"},
		Embedding:   embedding,
	}
}

func TestCourseRepositoryCreateAndFind(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))

	course := newCourse("Software Engineering", nil)
	require.NoError(t, repo.Create(course))
	require.NotEmpty(t, course.ID)

	found, err := repo.FindByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Software Engineering", found.Title)
	assert.Equal(t, model.StringList{"Algorithms"}, found.KeySubjects)
	assert.False(t, found.HasEmbedding())
}

func TestCourseRepositoryEmbeddingPartition(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))

	require.NoError(t, repo.Create(newCourse("With Embedding", model.Vector{1, 0, 0})))
	require.NoError(t, repo.Create(newCourse("Missing A", nil)))
	require.NoError(t, repo.Create(newCourse("Missing B", nil)))

	withEmbeddings, err := repo.FindWithEmbeddings()
	require.NoError(t, err)
	require.Len(t, withEmbeddings, 1)
	assert.Equal(t, "With Embedding", withEmbeddings[0].Title)
	assert.True(t, withEmbeddings[0].HasEmbedding())

	missing, err := repo.FindMissingEmbeddings()
	require.NoError(t, err)
	assert.Len(t, missing, 2)

	count, err := repo.CountMissingEmbeddings()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCourseRepositoryUpdateEmbedding(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))

	course := newCourse("Software Engineering", nil)
	require.NoError(t, repo.Create(course))

	require.NoError(t, repo.UpdateEmbedding(course.ID, model.Vector{0.1, 0.2, 0.3}))

	found, err := repo.FindByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Vector{0.1, 0.2, 0.3}, found.Embedding)

	// 幂等：重复写入同样生效
	require.NoError(t, repo.UpdateEmbedding(course.ID, model.Vector{0.4, 0.5, 0.6}))
	found, err = repo.FindByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Vector{0.4, 0.5, 0.6}, found.Embedding)
}

func TestCourseRepositoryList(t *testing.T) {
	repo := NewCourseRepository(newTestDB(t))

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(newCourse(fmt.Sprintf("Course %d", i), nil)))
	}

	page1, total, err := repo.List(1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, page1, 5)

	page2, _, err := repo.List(2, 5)
	require.NoError(t, err)
	assert.Len(t, page2, 2)
}

func TestRecommendationRepositoryRoundTrip(t *testing.T) {
	db := newTestDB(t)
	courses := NewCourseRepository(db)
	responses := NewStudentResponseRepository(db)
	recs := NewRecommendationRepository(db)

	courseA := newCourse("Course A", model.Vector{1, 0, 0})
	courseB := newCourse("Course B", model.Vector{0, 1, 0})
	require.NoError(t, courses.Create(courseA))
	require.NoError(t, courses.Create(courseB))

	response := &model.StudentResponse{CurrentProgram: "IB Diploma"}
	require.NoError(t, responses.Create(response))

	require.NoError(t, recs.CreateBatch([]model.Recommendation{
		{StudentResponseID: response.ID, CourseID: courseB.ID, SimilarityScore: 0.6, Rank: 2},
		{StudentResponseID: response.ID, CourseID: courseA.ID, SimilarityScore: 0.9, Rank: 1},
	}))

	rows, err := recs.FindByStudentResponse(response.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// rank_order 升序，课程已预加载
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, courseA.ID, rows[0].CourseID)
	require.NotNil(t, rows[0].Course)
	assert.Equal(t, "Course A", rows[0].Course.Title)
	assert.Equal(t, 2, rows[1].Rank)

	require.NoError(t, recs.DeleteByStudentResponse(response.ID))
	rows, err = recs.FindByStudentResponse(response.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
