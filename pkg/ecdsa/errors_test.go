package ecdsa

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrSecretOutOfRange, "ErrSecretOutOfRange"},
		{ErrInvalidKeyLen, "ErrInvalidKeyLen"},
		{ErrPubKeyInfinity, "ErrPubKeyInfinity"},
		{ErrPubKeyNotOnCurve, "ErrPubKeyNotOnCurve"},
		{ErrInvalidDigest, "ErrInvalidDigest"},
		{ErrInfinityNonce, "ErrInfinityNonce"},
		{ErrSigRIsZero, "ErrSigRIsZero"},
		{ErrSigRTooBig, "ErrSigRTooBig"},
		{ErrSigSIsZero, "ErrSigSIsZero"},
		{ErrSigSTooBig, "ErrSigSTooBig"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrSecretOutOfRange == ErrSecretOutOfRange",
		err:       ErrSecretOutOfRange,
		target:    ErrSecretOutOfRange,
		wantMatch: true,
		wantAs:    ErrSecretOutOfRange,
	}, {
		name:      "Error.ErrSecretOutOfRange == ErrSecretOutOfRange",
		err:       makeError(ErrSecretOutOfRange, ""),
		target:    ErrSecretOutOfRange,
		wantMatch: true,
		wantAs:    ErrSecretOutOfRange,
	}, {
		name:      "Error.ErrSecretOutOfRange == Error.ErrSecretOutOfRange",
		err:       makeError(ErrSecretOutOfRange, ""),
		target:    makeError(ErrSecretOutOfRange, ""),
		wantMatch: true,
		wantAs:    ErrSecretOutOfRange,
	}, {
		name:      "ErrPubKeyInfinity != ErrSecretOutOfRange",
		err:       ErrPubKeyInfinity,
		target:    ErrSecretOutOfRange,
		wantMatch: false,
		wantAs:    ErrPubKeyInfinity,
	}, {
		name:      "Error.ErrPubKeyInfinity != ErrSecretOutOfRange",
		err:       makeError(ErrPubKeyInfinity, ""),
		target:    ErrSecretOutOfRange,
		wantMatch: false,
		wantAs:    ErrPubKeyInfinity,
	}, {
		name:      "Error.ErrSigRTooBig != Error.ErrSigSTooBig",
		err:       makeError(ErrSigRTooBig, ""),
		target:    makeError(ErrSigSTooBig, ""),
		wantMatch: false,
		wantAs:    ErrSigRTooBig,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
