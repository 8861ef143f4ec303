package services

import "errors"

// Sentinel errors the handlers translate into status codes.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
	ErrAlreadyApproved    = errors.New("estimate already approved")
	ErrHasSubCategories   = errors.New("category has subcategories, delete them first")
	ErrHasSections        = errors.New("subcategory has sections, delete them first")
)

// ValidationError marks rejected request input; handlers answer it with 400.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Invalid builds a ValidationError.
func Invalid(msg string) error {
	return &ValidationError{msg: msg}
}

// IsValidation reports whether err is a request-input rejection.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
