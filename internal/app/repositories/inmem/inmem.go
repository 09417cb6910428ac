// Package inmem provides in-memory repository implementations used by tests.
package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/interatlas/interatlas/internal/app/models"
	"github.com/interatlas/interatlas/internal/pkg/apperrors"
)

// DB is a process-local store backing the in-memory repositories.
// Err, when set, is returned by every operation to simulate an
// unreachable store.
type DB struct {
	mu          sync.Mutex
	Err         error
	departments map[int64]*models.Department
	courses     map[int64]*models.Course
	students    map[int64]*models.Student
	nextID      int64
}

// Open creates an empty in-memory store
func Open() *DB {
	return &DB{
		departments: make(map[int64]*models.Department),
		courses:     make(map[int64]*models.Course),
		students:    make(map[int64]*models.Student),
	}
}

func (db *DB) nextSeq() int64 {
	db.nextID++
	return db.nextID
}

// DepartmentRepository is an in-memory IDepartmentRepository
type DepartmentRepository struct {
	db *DB
}

// NewDepartmentRepository creates an in-memory department repository
func NewDepartmentRepository(db *DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(_ context.Context, department *models.Department) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return r.db.Err
	}
	for _, d := range r.db.departments {
		if d.Name == department.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	department.ID = r.db.nextSeq()
	cp := *department
	r.db.departments[department.ID] = &cp
	return nil
}

func (r *DepartmentRepository) GetByID(_ context.Context, id int64) (*models.Department, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	if d, ok := r.db.departments[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (r *DepartmentRepository) GetByName(_ context.Context, name string) (*models.Department, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	for _, d := range r.db.departments {
		if d.Name == name {
			cp := *d
			return &cp, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (r *DepartmentRepository) GetAll(_ context.Context) ([]*models.Department, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	out := make([]*models.Department, 0, len(r.db.departments))
	for _, d := range r.db.departments {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

// CourseRepository is an in-memory ICourseRepository
type CourseRepository struct {
	db *DB
}

// NewCourseRepository creates an in-memory course repository
func NewCourseRepository(db *DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(_ context.Context, course *models.Course) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return r.db.Err
	}
	for _, c := range r.db.courses {
		if c.Name == course.Name && c.DepartmentID == course.DepartmentID {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	course.ID = r.db.nextSeq()
	cp := *course
	r.db.courses[course.ID] = &cp

	// Same write path keeps the denormalized name list consistent.
	if d, ok := r.db.departments[course.DepartmentID]; ok {
		found := false
		for _, name := range d.Courses {
			if name == course.Name {
				found = true
				break
			}
		}
		if !found {
			d.Courses = append(d.Courses, course.Name)
		}
	}
	return nil
}

func (r *CourseRepository) GetByNameAndDepartment(_ context.Context, name string, departmentID int64) (*models.Course, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	for _, c := range r.db.courses {
		if c.Name == name && c.DepartmentID == departmentID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *CourseRepository) GetByDepartmentID(_ context.Context, departmentID int64) ([]*models.Course, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	var out []*models.Course
	for _, c := range r.db.courses {
		if c.DepartmentID == departmentID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

// StudentRepository is an in-memory IStudentRepository
type StudentRepository struct {
	db *DB
}

// NewStudentRepository creates an in-memory student repository
func NewStudentRepository(db *DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Create(_ context.Context, student *models.Student) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return r.db.Err
	}
	// Email uniqueness mirrors the database constraint.
	for _, s := range r.db.students {
		if s.Email == student.Email {
			return apperrors.ErrDuplicateStudent
		}
	}
	student.ID = r.db.nextSeq()
	student.CreatedAt = time.Now().UTC()
	student.UpdatedAt = student.CreatedAt
	cp := *student
	r.db.students[student.ID] = &cp
	return nil
}

func (r *StudentRepository) ExistsByEmailOrStudentID(_ context.Context, email, studentID string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return false, r.db.Err
	}
	for _, s := range r.db.students {
		if s.Email == email || s.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *StudentRepository) GetByStudentIDAndEmail(_ context.Context, studentID, email string) (*models.Student, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	for _, s := range r.db.students {
		if s.StudentID == studentID && s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *StudentRepository) GetByID(_ context.Context, id int64) (*models.Student, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.Err != nil {
		return nil, r.db.Err
	}
	s, ok := r.db.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *s
	if d, ok := r.db.departments[s.DepartmentID]; ok {
		dcp := *d
		cp.Department = &dcp
	}
	if c, ok := r.db.courses[s.CourseID]; ok {
		ccp := *c
		cp.Course = &ccp
	}
	return &cp, nil
}
