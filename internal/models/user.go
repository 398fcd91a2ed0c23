package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the contract this service needs from the remote auth backend's
// tokens: who the shopper is.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

type EmailNotificationRequest struct {
	To          string   `json:"to" validate:"required,email"`
	CC          []string `json:"cc,omitempty"`
	BCC         []string `json:"bcc,omitempty"`
	Subject     string   `json:"subject" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	HTMLContent string   `json:"html_content,omitempty"`
}
