package models

// Course represents a program of study belonging to exactly one department.
// Course names are unique within a department, not globally.
type Course struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	DepartmentID int64  `json:"departmentId" db:"department_id"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
