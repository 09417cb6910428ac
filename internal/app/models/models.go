package models

// RoleType defines the user role type
type RoleType string

const (
	// RoleStudent is the only role the registration workflow accepts.
	RoleStudent RoleType = "student"
)
