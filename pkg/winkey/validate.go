package winkey

// Validate checks a product key against every known format and reports which
// release it belongs to. Formats in this family are fixed-width, so dispatch
// is purely by length; length is counted in bytes.
func Validate(key string) (Key, error) {
	switch n := len(key); {
	case n <= 10:
		return Key{}, ErrTooShort
	case n == 11:
		// Ex: 000-0000000
		return ValidateWindows95(key)
	default:
		return Key{}, ErrTooLong
	}
}
