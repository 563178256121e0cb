package models

type HealthResponse struct {
	Status       string `json:"status"`
	Port         string `json:"port"`
	HasAPIKey    bool   `json:"hasApiKey"`
	APIKeyPrefix string `json:"apiKeyPrefix"`
	Runtime      string `json:"runtime"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
	Detail string `json:"detail,omitempty"`
}
