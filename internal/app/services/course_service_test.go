package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interatlas/interatlas/internal/app/models"
	"github.com/interatlas/interatlas/internal/app/repositories/inmem"
	"github.com/interatlas/interatlas/internal/pkg/apperrors"
)

func TestCreateCourse(t *testing.T) {
	db := inmem.Open()
	service := NewCourseService(
		inmem.NewCourseRepository(db),
		inmem.NewDepartmentRepository(db),
	)
	ctx := context.Background()

	department := &models.Department{Name: "Computer Science", Courses: []string{}}
	require.NoError(t, inmem.NewDepartmentRepository(db).Create(ctx, department))

	course := &models.Course{Name: "AI & ML", DepartmentID: department.ID}
	require.NoError(t, service.CreateCourse(ctx, course))
	assert.NotZero(t, course.ID)
	require.NotNil(t, course.Department)
	assert.Equal(t, "Computer Science", course.Department.Name)

	// The department's advisory name list picks up the new course.
	refreshed, err := inmem.NewDepartmentRepository(db).GetByID(ctx, department.ID)
	require.NoError(t, err)
	assert.Contains(t, refreshed.Courses, "AI & ML")

	t.Run("duplicate within department", func(t *testing.T) {
		err := service.CreateCourse(ctx, &models.Course{Name: "AI & ML", DepartmentID: department.ID})
		assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)
	})

	t.Run("unknown department", func(t *testing.T) {
		err := service.CreateCourse(ctx, &models.Course{Name: "Accounting", DepartmentID: 99999})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		err := service.CreateCourse(ctx, &models.Course{Name: " ", DepartmentID: department.ID})
		assert.ErrorIs(t, err, apperrors.ErrCourseValidation)
	})

	t.Run("missing department id", func(t *testing.T) {
		err := service.CreateCourse(ctx, &models.Course{Name: "Accounting"})
		assert.ErrorIs(t, err, apperrors.ErrCourseValidation)
	})
}
