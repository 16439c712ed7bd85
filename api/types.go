package api

import (
	"github.com/jabbate19/devcade-api/models"
	"github.com/jabbate19/devcade-api/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	gameHandler gameHandler
	tagHandler  tagHandler
	userHandler userHandler
}

// GameMetadata is the JSON body of a metadata-only edit.
type GameMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreatedGame is the response to a successful game submission: the new row
// plus any non-fatal image publication warnings.
type CreatedGame struct {
	Game     models.Game        `json:"game"`
	Warnings []services.Warning `json:"warnings,omitempty"`
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
	Cause   string `json:"cause,omitempty"`
}
