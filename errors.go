package prefid

import (
	"fmt"

	"github.com/joshjon/kit/errtag"
)

// ErrTagInvalidPrefix tags parse errors for input that does not start with
// the identifier's prefix immediately followed by the separator.
type ErrTagInvalidPrefix struct{ errtag.InvalidArgument }

func (ErrTagInvalidPrefix) Msg() string { return "failed to parse ID: invalid prefix" }

func (e ErrTagInvalidPrefix) Unwrap() error {
	return errtag.Tag[errtag.InvalidArgument](e.Cause())
}

// ErrTagInvalidUUID tags parse errors for input with a valid prefix that is
// not followed by a valid UUID. The cause is the error returned by the UUID
// parser.
type ErrTagInvalidUUID struct{ errtag.InvalidArgument }

func (ErrTagInvalidUUID) Msg() string { return "failed to parse ID: invalid UUID" }

func (e ErrTagInvalidUUID) Unwrap() error {
	return errtag.Tag[errtag.InvalidArgument](e.Cause())
}

// parseError records why parse rejected its input before it is turned into a
// tagged or a plain error.
type parseError struct {
	invalidPrefix bool
	cause         error
}

func newInvalidPrefixError(prefix string, s string) *parseError {
	return &parseError{
		invalidPrefix: true,
		cause:         fmt.Errorf("%q does not start with %q", s, prefix+string(Separator)),
	}
}

func newInvalidUUIDError(err error) *parseError {
	return &parseError{cause: err}
}

func (e *parseError) msg() string {
	if e.invalidPrefix {
		return ErrTagInvalidPrefix{}.Msg()
	}
	return ErrTagInvalidUUID{}.Msg()
}

// tagged returns the error returned by Parse.
func (e *parseError) tagged() error {
	if e.invalidPrefix {
		return errtag.Tag[ErrTagInvalidPrefix](e.cause)
	}
	return errtag.Tag[ErrTagInvalidUUID](e.cause)
}

// decodeError returns the error returned by the serialization hooks. Only the
// message is kept.
func (e *parseError) decodeError(prefix string) error {
	return decodeError(prefix, fmt.Errorf("%s: %s", e.msg(), e.cause.Error()))
}

func decodeError(prefix string, err error) error {
	return fmt.Errorf("decode %q ID: %s", prefix, err.Error())
}
