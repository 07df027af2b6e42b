package winkey

// Mod7 implements Microsoft's "mod 7" checksum scheme: every byte must be a
// base-10 digit, and the scheme passes when the digit sum is divisible by 7.
//
// The boolean reports the checksum outcome; callers map false to ErrBadMod7.
// A non-digit byte aborts immediately with ErrExpectedDigit. The primitive
// accepts any length so other formats of the same family can reuse it.
func Mod7(b []byte) (bool, error) {
	var sum uint
	for _, c := range b {
		if c < '0' || c > '9' {
			return false, ErrExpectedDigit
		}
		sum += uint(c - '0')
	}
	return sum%7 == 0, nil
}
