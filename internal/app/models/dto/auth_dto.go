package dto

// RegisterStudentRequest represents a student registration payload.
// Fields carry no binding tags on purpose: the registration workflow
// validates shape itself so that the first violated field is reported
// with its own message.
type RegisterStudentRequest struct {
	Role       string `json:"role"`
	Name       string `json:"name"`
	StudentID  string `json:"studentId"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Course     string `json:"course"`
}

// LoginRequest represents login identifying fields
type LoginRequest struct {
	StudentID string `json:"studentId" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// ProfileResponse represents the authenticated student's profile
type ProfileResponse struct {
	ID             int64  `json:"id"`
	Role           string `json:"role"`
	Name           string `json:"name"`
	StudentID      string `json:"studentId"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DepartmentID   int64  `json:"departmentId"`
	DepartmentName string `json:"departmentName,omitempty"`
	CourseID       int64  `json:"courseId"`
	CourseName     string `json:"courseName,omitempty"`
}
