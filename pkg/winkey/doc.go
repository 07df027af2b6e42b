// Package winkey validates and identifies legacy Windows product keys.
//
// The package reproduces the validation routine of the original Windows 95
// installer, recovered from its decompiled setup binary, rather than the
// commonly repeated folklore description of the format. The two differ in
// ways that matter: the installer never inspects the fourth character of an
// 11-character key, and it checks the first three characters only against a
// short list of forbidden digit triples, so keys with letters in the prefix
// validate successfully. This package preserves those quirks on purpose —
// a key the installer accepts must validate here, however wrong it looks.
//
// # Architecture
//
// Three layers, each a pure function over its input:
//
//   - Validate     – dispatches on key length to the matching format validator
//   - ValidateWindows95 – structural rules for the 11-character retail format
//   - Mod7         – the shared digit-sum checksum primitive of the family
//
// There is no state, no I/O, and no allocation beyond transient substrings,
// so every function is safe for unlimited concurrent use.
//
// # Usage
//
//	import "github.com/legacykeys/winkey/pkg/winkey"
//
//	key, err := winkey.Validate("757-2573155")
//	if err != nil {
//	    // rejected; err is one of the sentinel errors below
//	}
//	fmt.Println(key.Release) // windows95
//
// # Error Handling
//
// Rejections are reported through a closed set of sentinel errors, comparable
// with errors.Is: ErrTooShort, ErrTooLong, ErrBadMod7, ErrExpectedDigit,
// ErrInvalidDigitPosition, and ErrBadAccess. Exactly one is returned per
// rejected key, decided by the first rule the key violates. Errors are never
// wrapped and carry no payload; every rejection is an ordinary outcome of
// validating untrusted input, not a fault.
//
// # Release Identifiers
//
// Release enumerates the key families the package knows about. Only
// ReleaseWindows95 has validation logic today; ReleaseWindows95OEM and
// ReleaseWindows98 are reserved for the other mod-7 formats and are never
// produced by a successful validation.
package winkey
