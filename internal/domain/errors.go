package domain

import "errors"

var (
	// ErrValidation marks user input faults. ErrInvalidContentType and
	// ErrInvalidFileFormat both match it with errors.Is.
	ErrValidation = errors.New("validation error")

	ErrInvalidContentType = &validationError{msg: "invalid content type"}
	ErrInvalidFileFormat  = &validationError{msg: "invalid file format"}

	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrDecode                 = errors.New("decode error")
	ErrNotFound               = errors.New("verification not found")
	ErrStore                  = errors.New("store error")
	ErrInference              = errors.New("inference error")
)

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Unwrap() error { return ErrValidation }
