package chrome

import (
	"github.com/morikuni/failure/v2"
)

// ErrorCode defines error types for automation bridge operations
type ErrorCode string

const (
	// ErrPermissionDenied means macOS has not granted this process
	// automation access to the target application
	ErrPermissionDenied ErrorCode = "PermissionDenied"

	// ErrBridgeUnavailable represents any non-permission bridge failure,
	// such as Chrome not running or osascript missing
	ErrBridgeUnavailable ErrorCode = "BridgeUnavailable"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// IsPermissionDenied reports whether err carries the PermissionDenied code
func IsPermissionDenied(err error) bool {
	return failure.CodeOf(err) == ErrPermissionDenied
}
