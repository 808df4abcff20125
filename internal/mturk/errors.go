package mturk

import (
	"errors"
	"fmt"
)

// ErrPurgeRefused guards the bulk-disable escape hatch. Purge never runs;
// it exists so nobody wires a destructive default by accident.
var ErrPurgeRefused = errors.New("refusing to purge all HITs: you probably don't want to do this")

// ErrStatsUnsupported marks the requester statistics endpoints that were
// removed from the 2017-01-17 API. Permanent, not transient.
var ErrStatsUnsupported = errors.New("requester statistics are not supported by the current MTurk API")

// ServiceError is any failure reported by the remote service. It is
// surfaced to the caller as-is: no retry, no suppression.
type ServiceError struct {
	Op      string // remote operation name, e.g. "CreateHIT"
	Code    string // AWS error type, empty for transport failures
	Message string
}

func (e *ServiceError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("mturk: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("mturk: %s: %s: %s", e.Op, e.Code, e.Message)
}
