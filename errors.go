package argparser

import (
	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// Error kinds. Every error returned by this package matches exactly one of
// these with errors.Is.
var (
	ErrNameCollision        = errors.New("name collision")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrUnknownOption        = errors.New("unknown option")
	ErrMalformedToken       = errors.New("malformed token")
	ErrEmptyInput           = errors.New("empty input")
	ErrOutOfRange           = errors.New("out of range")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrInvariantViolation   = errors.New("invariant violation")
)

type kindError struct {
	kind  error
	cause error
	usage bool
}

func (k kindError) Error() string { return k.cause.Error() }
func (k kindError) Unwrap() error { return k.cause }
func (k kindError) Cause() error  { return k.cause }
func (k kindError) Is(err error) bool {
	return err == k.kind
}

// usageError annotates an error as being a usage error (messed up
// command line).
func usageError(kind error, format string, args ...interface{}) error {
	return kindError{
		kind:  kind,
		cause: commonerrors.UsageError(errors.Errorf(format, args...)),
		usage: true,
	}
}

// programmerError is for mistakes made while declaring options
func programmerError(kind error, format string, args ...interface{}) error {
	return kindError{
		kind:  kind,
		cause: commonerrors.ProgrammerError(errors.Errorf(format, args...)),
	}
}

func libraryError(format string, args ...interface{}) error {
	return kindError{
		kind:  ErrInvariantViolation,
		cause: commonerrors.LibraryError(errors.Errorf(format, args...)),
	}
}

// IsUsageError reports if the error was caused by the command
// line that was parsed rather than by how the options were declared.
// When you have a usage error, you should display the program usage
// help text.
func IsUsageError(err error) bool {
	var k kindError
	return errors.As(err, &k) && k.usage
}
