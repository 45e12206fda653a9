// Package web implements the HTML page and its JSON mirrors, including DTOs and handlers.
package web

import (
	"block_explorer/internal/core/view"
)

// ErrorResponse defines a standard structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse defines the structure for the GET /healthz endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// pageData is the template input of the explorer page.
type pageData struct {
	Page         view.Page
	SelectedHash string
}
