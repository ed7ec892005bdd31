package entity

import "errors"

// Domain errors
var (
	// View errors
	ErrEmptyPrompt     = errors.New("prompt is empty")
	ErrRequestInFlight = errors.New("generation request already in flight")
	ErrNoResult        = errors.New("no generated blog available")

	// Generation errors
	ErrRequestFailed     = errors.New("blog generation request failed")
	ErrMalformedResponse = errors.New("malformed generation response")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Validation errors
	ErrMissingField      = errors.New("required field is missing")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// RequestFailureMessage is the only error text ever shown to the user
const RequestFailureMessage = "An error occurred while generating the blog. Please try again."
