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

// DepartmentService handles department administration
type DepartmentService struct {
	departmentRepo repositories.IDepartmentRepository
	courseRepo     repositories.ICourseRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo repositories.IDepartmentRepository, courseRepo repositories.ICourseRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		courseRepo:     courseRepo,
	}
}

// validateDepartment validates department data before database operations
func (s *DepartmentService) validateDepartment(department *models.Department) error {
	if department == nil {
		return fmt.Errorf("%w: department is nil", apperrors.ErrDepartmentValidation)
	}

	if strings.TrimSpace(department.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrDepartmentValidation)
	}

	if department.Courses == nil {
		return fmt.Errorf("%w: courses list is required", apperrors.ErrDepartmentValidation)
	}

	for _, name := range department.Courses {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: course names cannot be empty", apperrors.ErrDepartmentValidation)
		}
	}

	return nil
}

// CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(ctx context.Context, department *models.Department) error {
	if err := s.validateDepartment(department); err != nil {
		return err
	}

	err := s.departmentRepo.Create(ctx, department)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentAlreadyExists) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// GetAllDepartments retrieves all departments
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// GetDepartmentCourses retrieves the authoritative course records of a department
func (s *DepartmentService) GetDepartmentCourses(ctx context.Context, departmentID int64) ([]*models.Course, error) {
	if departmentID <= 0 {
		return nil, fmt.Errorf("%w: invalid department ID", apperrors.ErrDepartmentValidation)
	}

	if _, err := s.departmentRepo.GetByID(ctx, departmentID); err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error checking department: %w", err)
	}

	courses, err := s.courseRepo.GetByDepartmentID(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving department courses: %w", err)
	}
	return courses, nil
}
