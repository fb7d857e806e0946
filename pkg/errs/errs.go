// Package errs defines the error taxonomy shared across the parsing and
// generation pipeline. Callers classify failures with errors.Is against the
// sentinels here; wrapping preserves the sentinel through any number of
// context layers.
package errs

import "github.com/cockroachdb/errors"

var (
	// ErrNotFound indicates the input source path does not exist.
	ErrNotFound = errors.New("source not found")

	// ErrMalformedInput indicates the source content could not be
	// deserialized for its declared or detected format.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnknownFormat indicates no registered parser claims the
	// requested or detected format name.
	ErrUnknownFormat = errors.New("unknown input format")

	// ErrUnknownGenerator indicates no generator is registered under the
	// requested name.
	ErrUnknownGenerator = errors.New("unknown generator")
)

// MarkMalformed wraps a deserialization failure with context and marks it so
// errors.Is(err, ErrMalformedInput) holds while the original cause stays
// visible in the chain.
func MarkMalformed(cause error, format, msg string) error {
	return errors.Mark(errors.Wrapf(cause, "%s: %s", format, msg), ErrMalformedInput)
}
