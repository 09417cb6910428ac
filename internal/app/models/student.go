package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64     `json:"id" db:"id"`
	Role         RoleType  `json:"role" db:"role"`
	Name         string    `json:"name" db:"name"`
	StudentID    string    `json:"studentId" db:"student_id"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	DepartmentID int64     `json:"departmentId" db:"department_id"`
	CourseID     int64     `json:"courseId" db:"course_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
	Course     *Course     `json:"course,omitempty"`
}
