package model

import "github.com/passforge/passforge-go/internal/password"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Length         int   `json:"length"`
	Count          int   `json:"count"`
	Lowercase      *bool `json:"lowercase"`
	Uppercase      *bool `json:"uppercase"`
	Digits         *bool `json:"digits"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar *bool `json:"exclude_similar"`
}

// GenerateResponse represents a single generated password, optionally
// annotated with its strength report.
type GenerateResponse struct {
	Password string                   `json:"password"`
	Length   int                      `json:"length"`
	Strength *password.StrengthReport `json:"strength,omitempty"`
}
