package sqsqueue

import (
	"errors"

	"github.com/aws/smithy-go"
)

var (
	// ErrInvalidArgument is returned before any call to AWS when an operation argument is out of range.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidConfig is returned by New when a required configuration field is missing.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrNoTransport is returned when a queue built with NewIdentity is asked to reach AWS.
	ErrNoTransport = errors.New("queue has no transport configured")
	// ErrAuthentication matches every *AuthenticationError with errors.Is.
	ErrAuthentication = errors.New("authentication failed")
)

// AWS error codes reported when the access key or the request signature is rejected.
const (
	CodeInvalidClientTokenID  = "InvalidClientTokenId"
	CodeSignatureDoesNotMatch = "SignatureDoesNotMatch"
)

// AuthenticationError is returned when AWS rejects the queue credentials.
// It wraps the original AWS error.
type AuthenticationError struct {
	// AWS error code that caused the rejection.
	Code string

	err error
}

func (e *AuthenticationError) Error() string {
	if e.err == nil {
		return ErrAuthentication.Error()
	}

	return ErrAuthentication.Error() + ": " + e.err.Error()
}

func (e *AuthenticationError) Unwrap() error {
	return e.err
}

// Is reports ErrAuthentication as a match.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

// normalize turns AWS credential rejections into *AuthenticationError.
// Any other error is returned untouched.
func normalize(err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch code := apiErr.ErrorCode(); code {
	case CodeInvalidClientTokenID, CodeSignatureDoesNotMatch:
		return &AuthenticationError{Code: code, err: err}
	default:
		return err
	}
}
