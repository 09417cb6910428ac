package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/interatlas/interatlas/internal/app/models"
	"github.com/interatlas/interatlas/internal/app/repositories"
	"github.com/interatlas/interatlas/internal/pkg/apperrors"
)

// EnrollmentValidator decides whether a department/course name pair is a
// valid, registrable combination. It resolves both entities and has no
// side effects.
type EnrollmentValidator struct {
	departmentRepo repositories.IDepartmentRepository
	courseRepo     repositories.ICourseRepository
}

// NewEnrollmentValidator creates a new enrollment validator
func NewEnrollmentValidator(departmentRepo repositories.IDepartmentRepository, courseRepo repositories.ICourseRepository) *EnrollmentValidator {
	return &EnrollmentValidator{
		departmentRepo: departmentRepo,
		courseRepo:     courseRepo,
	}
}

// Validate resolves a department by exact name, then a course by name scoped
// to that department's identity. The courses table is authoritative: the
// department's denormalized course-name list is never consulted, so a stale
// cache entry can neither admit nor reject an enrollment.
func (v *EnrollmentValidator) Validate(ctx context.Context, departmentName, courseName string) (*models.Department, *models.Course, error) {
	department, err := v.departmentRepo.GetByName(ctx, departmentName)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return nil, nil, apperrors.ErrDepartmentNotFound
		}
		return nil, nil, fmt.Errorf("error resolving department: %w", err)
	}

	course, err := v.courseRepo.GetByNameAndDepartment(ctx, courseName, department.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, nil, apperrors.ErrCourseNotInDepartment
		}
		return nil, nil, fmt.Errorf("error resolving course: %w", err)
	}

	return department, course, nil
}
