package dex

import (
	"errors"
	"fmt"

	"rayScope/internal/model"
)

var (
	ErrLengthMismatch        = errors.New("account length mismatch")
	ErrDiscriminatorMismatch = errors.New("account discriminator mismatch")
	ErrInvalidField          = errors.New("invalid field value")
	ErrUnknownFormat         = errors.New("unknown account format")
)

// DecodeError reports which layout and field rejected a buffer.
type DecodeError struct {
	Kind  model.Kind
	Field string
	Want  string
	Got   string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s: %v (want %s, got %s)", e.Kind, e.Err, e.Want, e.Got)
	}
	return fmt.Sprintf("decode %s: %s: %v (want %s, got %s)", e.Kind, e.Field, e.Err, e.Want, e.Got)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func lengthError(kind model.Kind, want, got int) error {
	return &DecodeError{
		Kind: kind,
		Want: fmt.Sprintf("%d bytes", want),
		Got:  fmt.Sprintf("%d bytes", got),
		Err:  ErrLengthMismatch,
	}
}

func discriminatorError(kind model.Kind, want, got []byte) error {
	return &DecodeError{
		Kind: kind,
		Want: fmt.Sprintf("%x", want),
		Got:  fmt.Sprintf("%x", got),
		Err:  ErrDiscriminatorMismatch,
	}
}

func fieldError(kind model.Kind, field, want string, got interface{}) error {
	return &DecodeError{
		Kind:  kind,
		Field: field,
		Want:  want,
		Got:   fmt.Sprint(got),
		Err:   ErrInvalidField,
	}
}
