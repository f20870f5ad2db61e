package models

import "time"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// TemplateInfo is the listing shape returned by the templates endpoint;
// preamble and stylesheet bodies are omitted to keep the listing small
type TemplateInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

// TemplateListResponse wraps the template listing
type TemplateListResponse struct {
	Templates []TemplateInfo `json:"templates"`
}

// MarkupResponse carries the assembled markup document back to the client
type MarkupResponse struct {
	Markup   string `json:"markup"`
	Template string `json:"template"`
}
