package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/interatlas/interatlas/internal/app/models"
	"github.com/interatlas/interatlas/internal/app/models/dto"
	"github.com/interatlas/interatlas/internal/app/repositories"
	"github.com/interatlas/interatlas/internal/pkg/apperrors"
	"github.com/interatlas/interatlas/internal/pkg/auth"
	"github.com/interatlas/interatlas/internal/pkg/validation"
)

// AuthService runs the registration workflow and issues session credentials.
//
// Login verifies no secret: a request matching a student's studentId and
// email receives a token. The system's owner has not decided how credential
// verification should work, so the gap is kept visible here instead of being
// papered over with an invented password scheme.
type AuthService struct {
	studentRepo repositories.IStudentRepository
	validator   *EnrollmentValidator
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	validator *EnrollmentValidator,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		studentRepo: studentRepo,
		validator:   validator,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// validateShape checks the registration payload field by field and reports
// the first violation only.
func (s *AuthService) validateShape(req *dto.RegisterStudentRequest) error {
	if req.Role != string(models.RoleStudent) {
		return apperrors.NewShapeError("role", "role must be \"student\"")
	}
	if !validation.IsValidName(req.Name) {
		return apperrors.NewShapeError("name", "name must be between 3 and 50 characters")
	}
	if strings.TrimSpace(req.StudentID) == "" {
		return apperrors.NewShapeError("studentId", "studentId is required")
	}
	if !validation.IsValidEmail(req.Email) {
		return apperrors.NewShapeError("email", "email must be a valid email address")
	}
	if !validation.IsValidPhone(req.Phone) {
		return apperrors.NewShapeError("phone", "phone must be 7 to 15 digits with an optional leading +")
	}
	if strings.TrimSpace(req.Department) == "" {
		return apperrors.NewShapeError("department", "department is required")
	}
	if strings.TrimSpace(req.Course) == "" {
		return apperrors.NewShapeError("course", "course is required")
	}
	return nil
}

// RegisterStudent validates a candidate registration and persists the student.
// Stages: shape validation, referential validation, duplicate check, persist.
// No record is written on any failure path.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) error {
	if err := s.validateShape(req); err != nil {
		return err
	}

	department, course, err := s.validator.Validate(ctx, req.Department, req.Course)
	if err != nil {
		return err
	}

	// Advisory fast path; the unique constraint on email is the real guard.
	exists, err := s.studentRepo.ExistsByEmailOrStudentID(ctx, req.Email, req.StudentID)
	if err != nil {
		s.logger.Error().Err(err).Msg("Duplicate check failed")
		return fmt.Errorf("%w: duplicate check failed", apperrors.ErrPersistence)
	}
	if exists {
		return apperrors.ErrDuplicateStudent
	}

	student := &models.Student{
		Role:         models.RoleStudent,
		Name:         req.Name,
		StudentID:    req.StudentID,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: department.ID,
		CourseID:     course.ID,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		// A racing registration can slip past the advisory check; the
		// constraint violation still reports as a duplicate.
		if errors.Is(err, apperrors.ErrDuplicateStudent) {
			return apperrors.ErrDuplicateStudent
		}
		s.logger.Error().Err(err).Str("studentID", req.StudentID).Msg("Failed to persist student")
		return fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	s.logger.Info().
		Str("studentID", student.StudentID).
		Str("department", department.Name).
		Str("course", course.Name).
		Msg("Student registered")

	return nil
}

// Login looks up a student matching both identifying fields and mints a
// signed, time-bounded session credential. The failure message never reveals
// which field was wrong.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	student, err := s.studentRepo.GetByStudentIDAndEmail(ctx, req.StudentID, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("Student lookup failed")
		return nil, fmt.Errorf("%w: student lookup failed", apperrors.ErrServiceUnavailable)
	}

	token, expiresIn, err := s.jwtService.GenerateToken(student)
	if err != nil {
		s.logger.Error().Err(err).Int64("id", student.ID).Msg("Token generation failed")
		return nil, fmt.Errorf("%w: token generation failed", apperrors.ErrServiceUnavailable)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

// GetProfile retrieves a student profile with department and course resolved
func (s *AuthService) GetProfile(ctx context.Context, studentID int64) (*dto.ProfileResponse, error) {
	if studentID <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	profile := &dto.ProfileResponse{
		ID:           student.ID,
		Role:         string(student.Role),
		Name:         student.Name,
		StudentID:    student.StudentID,
		Email:        student.Email,
		Phone:        student.Phone,
		DepartmentID: student.DepartmentID,
		CourseID:     student.CourseID,
	}
	if student.Department != nil {
		profile.DepartmentName = student.Department.Name
	}
	if student.Course != nil {
		profile.CourseName = student.Course.Name
	}

	return profile, nil
}
