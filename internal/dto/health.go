package dto

// HealthResponse is the body of the health check endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}
