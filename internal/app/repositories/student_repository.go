package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interatlas/interatlas/internal/app/models"
	"github.com/interatlas/interatlas/internal/pkg/apperrors"
	"github.com/interatlas/interatlas/internal/pkg/dberrors"
	"github.com/interatlas/interatlas/internal/pkg/logger"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create persists a new student. The unique constraint on email is the
// authoritative duplicate guard; a violation here means the advisory
// existence check raced with a concurrent registration.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("role", "name", "student_id", "email", "phone", "department_id", "course_id").
		Values(student.Role, student.Name, student.StudentID, student.Email, student.Phone, student.DepartmentID, student.CourseID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			logger.Warn().Str("email", student.Email).Str("studentID", student.StudentID).Msg("Attempted to create duplicate student")
			return apperrors.ErrDuplicateStudent
		}
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Int64("id", student.ID).Str("studentID", student.StudentID).Msg("Student created successfully")
	return nil
}

// ExistsByEmailOrStudentID checks whether any student matches either field
func (r *StudentRepository) ExistsByEmailOrStudentID(ctx context.Context, email, studentID string) (bool, error) {
	var exists bool
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Or{
			squirrel.Eq{"email": email},
			squirrel.Eq{"student_id": studentID},
		}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building student exists SQL")
		return false, fmt.Errorf("failed to build student exists query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Str("email", email).Str("studentID", studentID).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// GetByStudentIDAndEmail retrieves a student matching both identifying fields
func (r *StudentRepository) GetByStudentIDAndEmail(ctx context.Context, studentID, email string) (*models.Student, error) {
	var student models.Student
	sql, args, err := r.sb.Select("id", "role", "name", "student_id", "email", "phone", "department_id", "course_id", "created_at", "updated_at").
		From("students").
		Where(squirrel.Eq{"student_id": studentID, "email": email}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.Role, &student.Name, &student.StudentID, &student.Email,
		&student.Phone, &student.DepartmentID, &student.CourseID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetByID retrieves a student by primary key with department and course resolved
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.role", "s.name", "s.student_id", "s.email", "s.phone",
		"s.department_id", "s.course_id", "s.created_at", "s.updated_at",
		"d.name", "d.courses", "c.name").
		From("students s").
		Join("departments d ON d.id = s.department_id").
		Join("courses c ON c.id = s.course_id").
		Where(squirrel.Eq{"s.id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var student models.Student
	var department models.Department
	var course models.Course
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.Role, &student.Name, &student.StudentID, &student.Email,
		&student.Phone, &student.DepartmentID, &student.CourseID, &student.CreatedAt, &student.UpdatedAt,
		&department.Name, &department.Courses, &course.Name)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("id", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	department.ID = student.DepartmentID
	course.ID = student.CourseID
	course.DepartmentID = student.DepartmentID
	student.Department = &department
	student.Course = &course

	return &student, nil
}
