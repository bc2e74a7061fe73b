package models

// StatusError is the status value of every error payload.
const StatusError = "Error"

// ErrorResponse is the body written by the terminal HTTP error handler.
type ErrorResponse struct {
	// Status is always [StatusError].
	Status string `json:"status"`

	// Message is the public description of the error, usually the HTTP
	// status text.
	Message string `json:"message"`

	// Details carries the underlying error text. It is only filled in the
	// development environment.
	Details string `json:"details,omitempty"`
}
