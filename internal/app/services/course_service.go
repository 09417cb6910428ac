package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/interatlas/interatlas/internal/app/models"
	"github.com/interatlas/interatlas/internal/app/repositories"
	"github.com/interatlas/interatlas/internal/pkg/apperrors"
)

// CourseService handles course administration
type CourseService struct {
	courseRepo     repositories.ICourseRepository
	departmentRepo repositories.IDepartmentRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository, departmentRepo repositories.IDepartmentRepository) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
	}
}

// validateCourse validates course data before database operations
func (s *CourseService) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrCourseValidation)
	}

	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrCourseValidation)
	}

	if course.DepartmentID <= 0 {
		return fmt.Errorf("%w: department ID must be positive", apperrors.ErrCourseValidation)
	}

	return nil
}

// CreateCourse creates a new course under an existing department
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}

	// The department must exist before a course can reference it.
	department, err := s.departmentRepo.GetByID(ctx, course.DepartmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error checking department: %w", err)
	}
	course.Department = department

	err = s.courseRepo.Create(ctx, course)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseAlreadyExists) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}
