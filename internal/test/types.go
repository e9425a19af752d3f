package test

// ClassifyRequest represents a classification request
type ClassifyRequest struct {
	Text string `json:"text"`
}

// ClassifyResponse represents the router's verdict for one message
type ClassifyResponse struct {
	Intent     string `json:"intent"`
	ProductID  int    `json:"product_id,omitempty"`
	Language   string `json:"language,omitempty"`
	Normalized string `json:"normalized"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
