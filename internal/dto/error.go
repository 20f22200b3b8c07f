package dto

// ErrorResponse is the body of every handler-produced 4xx/5xx response.
type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
}

// MessageResponse carries a human-readable confirmation for mutations that
// return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}
