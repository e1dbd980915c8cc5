package service

import (
	"errors"
)

// ErrValidation is returned when a comparison request is missing its origin or destination.
var ErrValidation = errors.New("origin and destination are required")

// ErrDistanceUnavailable matches every *DistanceUnavailableError via errors.Is.
var ErrDistanceUnavailable = errors.New("distance unavailable")

// Reason tells apart the ways a distance lookup can fail.
type Reason string

const (
	ReasonRemoteNotConfigured  Reason = "remote_not_configured"
	ReasonMalformedCoordinates Reason = "malformed_coordinates"
	ReasonRemoteFailure        Reason = "remote_failure"
)

// DistanceUnavailableError is returned by a DistanceResolver that could not produce a distance.
// Message is shown to the caller as is.
type DistanceUnavailableError struct {
	Reason  Reason
	Message string
	Err     error
}

func (e *DistanceUnavailableError) Error() string {
	return e.Message
}

func (e *DistanceUnavailableError) Unwrap() error {
	return e.Err
}

func (e *DistanceUnavailableError) Is(target error) bool {
	return target == ErrDistanceUnavailable
}

func unavailable(reason Reason, msg string, cause error) error {
	return &DistanceUnavailableError{Reason: reason, Message: msg, Err: cause}
}

// ReasonOf returns the failure reason carried by err, or "" when err is not a distance failure.
func ReasonOf(err error) Reason {
	var de *DistanceUnavailableError
	if errors.As(err, &de) {
		return de.Reason
	}
	return ""
}
