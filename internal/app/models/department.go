package models

// Department represents an organizational unit owning a set of courses.
// Courses holds the denormalized course-name list the signup form reads;
// the courses table is the authoritative record of the relationship.
type Department struct {
	ID      int64    `json:"id" db:"id"`
	Name    string   `json:"name" db:"name"`
	Courses []string `json:"courses" db:"courses"`
}
