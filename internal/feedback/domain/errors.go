package domain

import "errors"

var (
	// ErrNotFound is returned when the referenced feedback does not exist.
	ErrNotFound = errors.New("feedback not found")

	// ErrMissingRequiredField marks a draft missing dateTime, shift or location.
	ErrMissingRequiredField = errors.New("required field is missing")

	// ErrWrongImageType marks an attachment whose declared type is not an image.
	ErrWrongImageType = errors.New("attachment is not an image")

	// ErrImageTooLarge marks an attachment over the per-file size limit.
	ErrImageTooLarge = errors.New("attachment exceeds size limit")

	// ErrTooManyImages marks a batch that would push a record past the
	// attachment cap. The accepted prefix of the batch is still usable.
	ErrTooManyImages = errors.New("attachment limit exceeded")
)
