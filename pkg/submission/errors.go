package submission

import "errors"

// FailureMessage is the only failure text ever shown to the user.
const FailureMessage = "Failed to fetch keyword research. Please try again."

var (
	// ErrInFlight is returned when a submit arrives while a request is loading.
	ErrInFlight = errors.New("submission: request already in flight")
	// ErrLocationRequired is returned when the form has no location selected.
	ErrLocationRequired = errors.New("submission: location must be selected")
	// ErrSearchFailed wraps transport failures returned to callers for logging.
	ErrSearchFailed = errors.New("submission: search failed")
	// ErrNilTransport is returned by New without a transport.
	ErrNilTransport = errors.New("submission: transport is nil")

	errTransportPanic = errors.New("submission: transport panicked")
)
