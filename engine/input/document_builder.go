package input

import "go.uber.org/zap"

// DocumentBuilderOption is a functional option for configuring a Document.
type DocumentBuilderOption func(*documentImpl)

// WithBackend sets the platform capture primitive used to resolve lock requests.
//
// Parameters:
//   - b: the backend that grabs and frees the cursor
//
// Returns:
//   - DocumentBuilderOption: functional option to set the backend
func WithBackend(b Backend) DocumentBuilderOption {
	return func(d *documentImpl) {
		d.backend = b
	}
}

// WithLogger sets the logger used for capture transition diagnostics.
//
// Parameters:
//   - logger: the zap logger (nil keeps the no-op default)
//
// Returns:
//   - DocumentBuilderOption: functional option to set the logger
func WithLogger(logger *zap.Logger) DocumentBuilderOption {
	return func(d *documentImpl) {
		if logger != nil {
			d.logger = logger
		}
	}
}
