package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigurationError via errors.Is
	ErrConfiguration = errors.New("shape: invalid configuration")
	// ErrUpload matches every *UploadError via errors.Is
	ErrUpload = errors.New("shape: buffer upload failed")
)

// ConfigurationError is returned by a build when the builder holds
// parameters that cannot produce valid geometry. It is always raised before
// the device is touched.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("shape: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// UploadError wraps a failure reported by the Device while creating a buffer
type UploadError struct {
	Buffer string // "vertex" or "index"
	Err    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("shape: could not create %s buffer: %v", e.Buffer, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

func (e *UploadError) Is(target error) bool {
	return target == ErrUpload
}
