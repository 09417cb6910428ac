package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name    string   `json:"name" binding:"required"`
	Courses []string `json:"courses" binding:"required"`
}

// DepartmentResponse represents basic department information
type DepartmentResponse struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Courses []string `json:"courses"`
}

// DepartmentListResponse represents a list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}
