package goldilocks

import "errors"

var (
	// ErrBufferSize is returned when a byte slice has the wrong length
	ErrBufferSize = errors.New("goldilocks: wrong buffer size")

	// ErrInvalidEncoding is returned for byte strings that are not the
	// canonical encoding of a group element
	ErrInvalidEncoding = errors.New("goldilocks: invalid point encoding")

	// ErrIdentity is returned when the identity was decoded but not allowed
	ErrIdentity = errors.New("goldilocks: identity element not allowed")
)
