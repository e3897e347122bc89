package test

// ClassifyRequest represents a routing test request
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyResponse represents the routing decision for a test request
type ClassifyResponse struct {
	Success    bool   `json:"success"`
	Intent     string `json:"intent,omitempty"`
	Keyword    string `json:"keyword,omitempty"`
	CallsModel bool   `json:"calls_model"`
	Model      string `json:"model,omitempty"`
	Text       string `json:"text"`
	Error      string `json:"error,omitempty"`
	Details    string `json:"details,omitempty"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
