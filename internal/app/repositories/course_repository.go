package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interatlas/interatlas/internal/app/models"
	"github.com/interatlas/interatlas/internal/pkg/apperrors"
	"github.com/interatlas/interatlas/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a course and appends its name to the owning department's
// denormalized course-name list in the same transaction. The array is a
// read cache for the signup form; the courses table stays authoritative.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insert := `
		INSERT INTO courses (name, department_id)
		VALUES ($1, $2)
		RETURNING id
	`

	err = tx.QueryRow(ctx, insert, course.Name, course.DepartmentID).Scan(&course.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_name_department_id_key") {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	reconcile := `
		UPDATE departments
		SET courses = array_append(courses, $1)
		WHERE id = $2 AND NOT (courses @> ARRAY[$1])
	`

	if _, err := tx.Exec(ctx, reconcile, course.Name, course.DepartmentID); err != nil {
		return fmt.Errorf("error reconciling department course list: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByNameAndDepartment retrieves a course by name scoped to a department.
// Two departments may carry same-named courses, so the name alone is never
// enough to identify a course.
func (r *CourseRepository) GetByNameAndDepartment(ctx context.Context, name string, departmentID int64) (*models.Course, error) {
	query := `
		SELECT id, name, department_id
		FROM courses
		WHERE name = $1 AND department_id = $2
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, name, departmentID).Scan(
		&course.ID,
		&course.Name,
		&course.DepartmentID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetByDepartmentID retrieves all courses of a department
func (r *CourseRepository) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Course, error) {
	query := `
		SELECT id, name, department_id
		FROM courses
		WHERE department_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.DepartmentID,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
