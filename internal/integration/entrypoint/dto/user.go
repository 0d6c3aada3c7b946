// Package dto defines data transfer objects for API requests and responses.
package dto

// UpdatePreferencesRequest represents the request body for a profile update.
type UpdatePreferencesRequest struct {
	Name               *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
}
