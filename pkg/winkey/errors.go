package winkey

import "errors"

// Validation failure reasons. Exactly one is returned per rejected key,
// chosen by the first rule the key violates.
var (
	// ErrTooShort is returned when no known key format matches the input length.
	ErrTooShort = errors.New("key too short for any known format")

	// ErrTooLong is returned when no known key format matches the input length.
	ErrTooLong = errors.New("key too long for any known format")

	// ErrBadMod7 is returned when the digit sum over the checksum region is not
	// divisible by 7. Only applies to formats using the "mod 7" scheme.
	ErrBadMod7 = errors.New("digit sum not divisible by 7")

	// ErrExpectedDigit is returned when a byte in the checksum region is not a
	// base-10 digit.
	ErrExpectedDigit = errors.New("expected a digit")

	// ErrInvalidDigitPosition is returned by formats that bar certain digits
	// from certain positions.
	ErrInvalidDigitPosition = errors.New("forbidden digits at this position")

	// ErrBadAccess is returned when an internal byte-range access falls outside
	// the input's bounds. Seen only when a format validator is called directly
	// with input of the wrong length.
	ErrBadAccess = errors.New("byte range out of bounds")
)
