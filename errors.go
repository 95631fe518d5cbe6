package huygens

import (
	"fmt"
)

// ConfigError reports malformed grid extents or time-stepping parameters. It
// is returned before any field evaluation begins.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return e.Msg }

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{fmt.Sprintf(format, args...)}
}

// WaveletError reports a wavelet with degenerate parameters, such as a
// non-positive wave speed or a NaN origin. It is returned at construction
// time, never from field evaluation.
type WaveletError struct {
	Msg string
}

func (e *WaveletError) Error() string { return e.Msg }

func waveletErrorf(format string, args ...interface{}) *WaveletError {
	return &WaveletError{fmt.Sprintf(format, args...)}
}
