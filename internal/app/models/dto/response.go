package dto

import "time"

// APIResponse provides the base structured API response
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// MessageResponse represents a plain confirmation response
type MessageResponse struct {
	Message string `json:"message" example:"Registration successful!"`
}
