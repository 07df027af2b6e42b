package winkey

// ValidateWindows95 validates a retail Windows 95 format key (DDD-DDDDDDD,
// 11 characters).
//
// The rules reproduce the decompiled installer exactly, quirks included:
// the first three characters are only checked against seven forbidden
// triples, the fourth character is never inspected at all, and only the
// trailing seven characters must be digits whose sum divides by 7. A key
// like "YOLO1111111" is therefore genuinely valid.
//
// Callers normally go through Validate, which guarantees the length; called
// directly with a shorter string this fails with ErrBadAccess rather than
// reading out of bounds.
func ValidateWindows95(key string) (Key, error) {
	if len(key) < 3 {
		return Key{}, ErrBadAccess
	}
	// The installer rejects exactly these seven prefixes and checks nothing
	// else about the first three characters.
	switch key[0:3] {
	case "333", "444", "555", "666", "777", "888", "999":
		return Key{}, ErrInvalidDigitPosition
	}

	if len(key) < 4 {
		return Key{}, ErrBadAccess
	}
	ok, err := Mod7([]byte(key[4:]))
	if err != nil {
		return Key{}, err
	}
	if !ok {
		return Key{}, ErrBadMod7
	}
	return Key{Release: ReleaseWindows95}, nil
}
