package domain

import (
	"errors"
	"fmt"
)

// StatusCode is the result of a screen operation
type StatusCode int32

const (
	// StatusSuccess means the operation was applied
	StatusSuccess StatusCode = iota
	// StatusScreenNotFound means no screen exists for the given id
	StatusScreenNotFound
	// StatusInvalidArguments means a local precondition failed; the driver was not called
	StatusInvalidArguments
	// StatusHdiError means the driver rejected the call or no driver handle exists
	StatusHdiError
	// StatusHdiErrNotSupport means the driver cannot do this on the current hardware
	StatusHdiErrNotSupport
	// StatusVirtualScreen means a physical-only operation targeted a virtual screen
	StatusVirtualScreen
)

func (c StatusCode) String() string {
	switch c {
	case StatusSuccess:
		return "SUCCESS"
	case StatusScreenNotFound:
		return "SCREEN_NOT_FOUND"
	case StatusInvalidArguments:
		return "INVALID_ARGUMENTS"
	case StatusHdiError:
		return "HDI_ERROR"
	case StatusHdiErrNotSupport:
		return "HDI_ERR_NOT_SUPPORT"
	case StatusVirtualScreen:
		return "VIRTUAL_SCREEN"
	default:
		return fmt.Sprintf("STATUS(%d)", int32(c))
	}
}

// Err converts the code into an error, nil for StatusSuccess
func (c StatusCode) Err() error {
	if c == StatusSuccess {
		return nil
	}
	return &StatusError{Code: c}
}

// StatusError wraps a non-success StatusCode
type StatusError struct {
	Code StatusCode
}

func (e *StatusError) Error() string {
	return "screen operation failed: " + e.Code.String()
}

// Is matches another *StatusError with the same code
func (e *StatusError) Is(target error) bool {
	var other *StatusError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// HdfErrNotSupport is the vendor status code for an unsupported operation
const HdfErrNotSupport int32 = -5

// ErrHdiNotSupported is returned by HdiDevice implementations when the
// hardware cannot perform the call at all.
var ErrHdiNotSupported = errors.New("hdi: operation not supported")
