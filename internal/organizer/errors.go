package organizer

import "errors"

var (
	// ErrQuit unwinds the run loop after a Q command. It is not a failure.
	ErrQuit = errors.New("organizer terminated")

	ErrUnknownCommand    = errors.New("unknown command")
	ErrMissingArguments  = errors.New("missing arguments")
	ErrMalformedDate     = errors.New("malformed date")
	ErrMalformedDuration = errors.New("malformed duration")
)

// TokenError carries the raw token that could not be parsed.
type TokenError struct {
	Token string
	Err   error
}

func (e *TokenError) Error() string {
	return e.Token + ": " + e.Err.Error()
}

func (e *TokenError) Unwrap() error {
	return e.Err
}
