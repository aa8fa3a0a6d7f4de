package service

import (
	"testing"

	"unicourse_backend/internal/repository"
	"unicourse_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(t *testing.T) *CatalogService {
	t.Helper()
	return NewCatalogService(repository.NewCourseRepository(newTestDB(t)))
}

func TestCatalogImportAndGet(t *testing.T) {
	svc := newCatalogFixture(t)

	count, err := svc.Import([]CourseInput{
		{Title: "Software Engineering", University: "Test University", KeySubjects: []string{"Algorithms"}},
		{Title: "Data Science", University: "Test University"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	courses, total, err := svc.List(1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, courses, 2)

	found, err := svc.Get(courses[0].ID)
	require.NoError(t, err)
	assert.Equal(t, courses[0].Title, found.Title)
	assert.False(t, found.HasEmbedding())
}

func TestCatalogImportEmptyList(t *testing.T) {
	svc := newCatalogFixture(t)

	_, err := svc.Import(nil)
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestCatalogGetNotFound(t *testing.T) {
	svc := newCatalogFixture(t)

	_, err := svc.Get("missing-id")
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestCatalogListClampsPaging(t *testing.T) {
	svc := newCatalogFixture(t)

	_, err := svc.Import([]CourseInput{{Title: "Course", University: "Test University"}})
	require.NoError(t, err)

	courses, total, err := svc.List(-3, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, courses, 1)
}
