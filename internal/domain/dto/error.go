package dto

import "time"

// ErrorResponse is the structured error body returned by the HTTP boundary.
type ErrorResponse struct {
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
	Details   string    `json:"details,omitempty"`
}

func NotFoundError(message, path string) ErrorResponse {
	return ErrorResponse{
		Code:      "NOT_FOUND",
		Message:   message,
		Timestamp: time.Now().UTC(),
		Path:      path,
	}
}

func BadRequestError(message, path string) ErrorResponse {
	return ErrorResponse{
		Code:      "BAD_REQUEST",
		Message:   message,
		Timestamp: time.Now().UTC(),
		Path:      path,
	}
}

func ValidationError(message, details, path string) ErrorResponse {
	return ErrorResponse{
		Code:      "VALIDATION_ERROR",
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		Path:      path,
	}
}

func InternalError(message, path string) ErrorResponse {
	return ErrorResponse{
		Code:      "INTERNAL_SERVER_ERROR",
		Message:   message,
		Timestamp: time.Now().UTC(),
		Path:      path,
	}
}
