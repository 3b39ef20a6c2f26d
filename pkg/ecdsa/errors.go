package ecdsa

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrSecretOutOfRange is returned when a secret scalar is not in
	// [1, n-1].
	ErrSecretOutOfRange = ErrorKind("ErrSecretOutOfRange")

	// ErrInvalidKeyLen is returned when a serialized secret is longer than
	// the group order.
	ErrInvalidKeyLen = ErrorKind("ErrInvalidKeyLen")

	// ErrPubKeyInfinity is returned when a public key would be the point at
	// infinity.
	ErrPubKeyInfinity = ErrorKind("ErrPubKeyInfinity")

	// ErrPubKeyNotOnCurve is returned when public key coordinates do not
	// describe a point on the curve.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")

	// ErrInvalidDigest is returned when asked to sign a missing or negative
	// digest.
	ErrInvalidDigest = ErrorKind("ErrInvalidDigest")

	// ErrInfinityNonce is returned when a nonce multiplies the generator to
	// the point at infinity, which only happens with inconsistent domain
	// parameters.
	ErrInfinityNonce = ErrorKind("ErrInfinityNonce")

	// ErrSigRIsZero is returned when a signature has R set to the value zero.
	ErrSigRIsZero = ErrorKind("ErrSigRIsZero")

	// ErrSigRTooBig is returned when a signature has R with a value that is
	// greater than or equal to the group order.
	ErrSigRTooBig = ErrorKind("ErrSigRTooBig")

	// ErrSigSIsZero is returned when a signature has S set to the value zero.
	ErrSigSIsZero = ErrorKind("ErrSigSIsZero")

	// ErrSigSTooBig is returned when a signature has S with a value that is
	// greater than or equal to the group order.
	ErrSigSTooBig = ErrorKind("ErrSigSTooBig")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to keys or signatures. It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
