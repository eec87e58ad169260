package models

import "errors"

// Common errors used throughout the application
var (
	ErrEventNotFound        = errors.New("event not found")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrInsufficientCapacity = errors.New("insufficient seats available")
	ErrInvalidCiphertext    = errors.New("invalid or corrupt ticket payload")
	ErrMalformedPayload     = errors.New("malformed ticket payload")
	ErrTicketModified       = errors.New("ticket has been modified or is fraudulent")
	ErrTicketAlreadyUsed    = errors.New("ticket already used")
	ErrPayloadTooLarge      = errors.New("payload exceeds QR symbol capacity")
	ErrInvalidInput         = errors.New("invalid input")
)
