package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"unicourse_backend/internal/config"
	"unicourse_backend/internal/model"
	"unicourse_backend/internal/repository"
	"unicourse_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func backfillTestConfig() config.EmbeddingConfig {
	return config.EmbeddingConfig{
		Dimensions: 3,
		BatchSize:  5,
		BatchPause: time.Millisecond,
	}
}

func newBackfillFixture(t *testing.T, embedder Embedder) (*BackfillService, *repository.CourseRepository, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	courses := repository.NewCourseRepository(db)
	return NewBackfillService(embedder, courses, backfillTestConfig()), courses, db
}

func TestBuildCourseText(t *testing.T) {
	course := &model.Course{
		Title:           "Software Engineering",
		University:      "Test University",
		Field:           "Computer Science",
		Description:     "Build large systems",
		KeySubjects:     model.StringList{"Algorithms", "Databases"},
		CareerProspects: model.StringList{"Engineer", "Architect"},
	}

	text := BuildCourseText(course)
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "Title: Software Engineering", lines[0])
	assert.Equal(t, "University: Test University", lines[1])
	assert.Equal(t, "Field: Computer Science", lines[2])
	assert.Equal(t, "Description: Build large systems", lines[3])
	assert.Equal(t, "Key Subjects: Algorithms, Databases", lines[4])
	assert.Equal(t, "Career Prospects: Engineer, Architect", lines[5])
}

func TestBackfillAllProcessesEveryMissingCourse(t *testing.T) {
	embedder := &fakeEmbedder{embedFn: func(string) (model.Vector, error) {
		return model.Vector{1, 0, 0}, nil
	}}
	svc, courses, db := newBackfillFixture(t, embedder)

	for i := 0; i < 12; i++ {
		seedCourse(t, db, fmt.Sprintf("Course %d", i), nil)
	}
	seedCourse(t, db, "Already Embedded", model.Vector{0, 1, 0})

	report, err := svc.BackfillAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, report.Processed)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 12, embedder.calls)

	missing, err := courses.CountMissingEmbeddings()
	require.NoError(t, err)
	assert.Equal(t, int64(0), missing)
}

func TestBackfillAllContinuesPastSingleFailure(t *testing.T) {
	var calls int
	embedder := &fakeEmbedder{embedFn: func(string) (model.Vector, error) {
		calls++
		if calls == 7 {
			return nil, &util.ProviderError{StatusCode: 500, Attempts: 3}
		}
		return model.Vector{1, 0, 0}, nil
	}}
	svc, courses, db := newBackfillFixture(t, embedder)

	for i := 0; i < 12; i++ {
		seedCourse(t, db, fmt.Sprintf("Course %d", i), nil)
	}

	report, err := svc.BackfillAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 11, report.Processed)
	assert.Equal(t, 1, report.Failed)

	// 失败的课程下次运行可再次被捞起
	missing, err := courses.CountMissingEmbeddings()
	require.NoError(t, err)
	assert.Equal(t, int64(1), missing)
}

func TestBackfillAllEmptyCatalog(t *testing.T) {
	embedder := &fakeEmbedder{embedFn: func(string) (model.Vector, error) {
		return model.Vector{1, 0, 0}, nil
	}}
	svc, _, _ := newBackfillFixture(t, embedder)

	report, err := svc.BackfillAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Processed)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 0, embedder.calls)
}

func TestBackfillAllIdempotentSecondRun(t *testing.T) {
	embedder := &fakeEmbedder{embedFn: func(string) (model.Vector, error) {
		return model.Vector{1, 0, 0}, nil
	}}
	svc, _, db := newBackfillFixture(t, embedder)

	for i := 0; i < 3; i++ {
		seedCourse(t, db, fmt.Sprintf("Course %d", i), nil)
	}

	first, err := svc.BackfillAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, first.Processed)

	second, err := svc.BackfillAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.Processed)
	assert.Equal(t, 3, embedder.calls)
}

func TestStatus(t *testing.T) {
	embedder := &fakeEmbedder{embedFn: func(string) (model.Vector, error) {
		return model.Vector{1, 0, 0}, nil
	}}
	svc, _, db := newBackfillFixture(t, embedder)

	seedCourse(t, db, "Embedded", model.Vector{1, 0, 0})
	seedCourse(t, db, "Missing A", nil)
	seedCourse(t, db, "Missing B", nil)

	status, err := svc.Status()
	require.NoError(t, err)
	assert.Equal(t, int64(3), status.TotalCourses)
	assert.Equal(t, int64(2), status.MissingEmbeddings)
}
