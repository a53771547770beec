package service

import (
	"errors"
	"fmt"
)

// User-facing messages returned by the relay.
const (
	MsgMissingFields    = "Faltan campos requeridos (nombre, email, mensaje)"
	MsgInvalidEmail     = "Email inválido"
	MsgMethodNotAllowed = "Method not allowed"
	MsgDeliveryFailed   = "Error al enviar el email"
	MsgSent             = "Email enviado correctamente"
)

// Validation errors
var (
	ErrMissingFields = &ValidationError{Message: MsgMissingFields}
	ErrInvalidEmail  = &ValidationError{Message: MsgInvalidEmail}
)

// ErrMethodNotAllowed is returned for any method other than POST and OPTIONS.
var ErrMethodNotAllowed = &ProtocolError{Message: MsgMethodNotAllowed}

// ValidationError is a client-correctable problem with a submission.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ProtocolError is a request the endpoint does not accept at all.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return e.Message
}

// DeliveryError wraps a failure that happened while relaying a submission.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Detail returns the underlying error text, for development responses.
func (e *DeliveryError) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
