package service

import "fmt"

// ValidationError reports input rejected before any remote write was issued.
// The caller may correct the input and retry immediately.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// PartialFailure reports a transfer that passed validation but whose write
// sequence did not complete. Applied lists the writes that took effect, in
// order. They are not rolled back; the stored data may be inconsistent
// until reconciled out of band.
type PartialFailure struct {
	Applied []string
	Err     error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("transfer incomplete after %d of 3 writes: %v", len(e.Applied), e.Err)
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}
