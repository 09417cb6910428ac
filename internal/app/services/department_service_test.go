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

func newTestDepartmentService(db *inmem.DB) *DepartmentService {
	return NewDepartmentService(
		inmem.NewDepartmentRepository(db),
		inmem.NewCourseRepository(db),
	)
}

func TestCreateDepartment(t *testing.T) {
	db := inmem.Open()
	service := newTestDepartmentService(db)
	ctx := context.Background()

	department := &models.Department{Name: "Computer Science", Courses: []string{"AI & ML"}}
	require.NoError(t, service.CreateDepartment(ctx, department))
	assert.NotZero(t, department.ID)

	t.Run("duplicate name", func(t *testing.T) {
		err := service.CreateDepartment(ctx, &models.Department{Name: "Computer Science", Courses: []string{}})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentAlreadyExists)
	})

	t.Run("empty name", func(t *testing.T) {
		err := service.CreateDepartment(ctx, &models.Department{Name: "  ", Courses: []string{}})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentValidation)
	})

	t.Run("nil course list", func(t *testing.T) {
		err := service.CreateDepartment(ctx, &models.Department{Name: "Business"})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentValidation)
	})

	t.Run("blank course name", func(t *testing.T) {
		err := service.CreateDepartment(ctx, &models.Department{Name: "Business", Courses: []string{"Accounting", " "}})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentValidation)
	})
}

func TestGetAllDepartments(t *testing.T) {
	db := inmem.Open()
	service := newTestDepartmentService(db)
	ctx := context.Background()

	require.NoError(t, service.CreateDepartment(ctx, &models.Department{Name: "Computer Science", Courses: []string{}}))
	require.NoError(t, service.CreateDepartment(ctx, &models.Department{Name: "Business", Courses: []string{}}))

	departments, err := service.GetAllDepartments(ctx)
	require.NoError(t, err)
	assert.Len(t, departments, 2)
}

func TestGetDepartmentCourses(t *testing.T) {
	db := inmem.Open()
	service := newTestDepartmentService(db)
	ctx := context.Background()

	department := seedDepartmentWithCourse(t, db, "Computer Science", "AI & ML")
	require.NoError(t, inmem.NewCourseRepository(db).Create(ctx, &models.Course{
		Name:         "Software Engineering",
		DepartmentID: department.ID,
	}))

	courses, err := service.GetDepartmentCourses(ctx, department.ID)
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	_, err = service.GetDepartmentCourses(ctx, 99999)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)

	_, err = service.GetDepartmentCourses(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentValidation)
}
