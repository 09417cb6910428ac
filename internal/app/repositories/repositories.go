package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/interatlas/interatlas/internal/app/models"
)

// IDepartmentRepository defines department persistence operations
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByName(ctx context.Context, name string) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
}

// ICourseRepository defines course persistence operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByNameAndDepartment(ctx context.Context, name string, departmentID int64) (*models.Course, error)
	GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Course, error)
}

// IStudentRepository defines student persistence operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	ExistsByEmailOrStudentID(ctx context.Context, email, studentID string) (bool, error)
	GetByStudentIDAndEmail(ctx context.Context, studentID, email string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	StudentRepository    *StudentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		StudentRepository:    NewStudentRepository(db),
	}
}
