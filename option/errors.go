package option

import "errors"

// ErrNoOptions matches every NoOptionsError through errors.Is.
var ErrNoOptions = errors.New("no download options")

const fallbackMessage = "No downloadable media found for this link"

// NoOptionsError reports that a response yielded nothing to download. The
// message is meant for the end user.
type NoOptionsError struct {
	Message string
}

func (e *NoOptionsError) Error() string {
	return e.Message
}

func (e *NoOptionsError) Is(target error) bool {
	return target == ErrNoOptions
}

func noOptions(message string) error {
	if message == "" {
		message = fallbackMessage
	}
	return &NoOptionsError{Message: message}
}
