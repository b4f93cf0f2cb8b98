package goldilocks

import (
	"errors"
	"hash"

	sha256simd "github.com/minio/sha256-simd"
)

// SHA256 represents a SHA-256 hash context
type SHA256 struct {
	hasher hash.Hash
}

// NewSHA256 creates a new SHA-256 hash context
func NewSHA256() *SHA256 {
	return &SHA256{hasher: sha256simd.New()}
}

// Write writes data to the hash
func (h *SHA256) Write(data []byte) {
	h.hasher.Write(data)
}

// Finalize finalizes the hash and writes the result to out32 (must be 32 bytes)
func (h *SHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	copy(out32, h.hasher.Sum(nil))
}

// Reset clears the hash context for reuse
func (h *SHA256) Reset() {
	h.hasher.Reset()
}

var errDSTTooLong = errors.New("goldilocks: domain separation tag longer than 255 bytes")

// ExpandMessageXMD fills out with expand_message_xmd (RFC 9380, section
// 5.3.1) over SHA-256.
func ExpandMessageXMD(out, msg, dst []byte) error {
	if len(dst) > 255 {
		return errDSTTooLong
	}
	ell := (len(out) + 31) / 32
	if ell > 255 || len(out) > 0xffff {
		return ErrBufferSize
	}

	dstPrime := make([]byte, len(dst)+1)
	copy(dstPrime, dst)
	dstPrime[len(dst)] = byte(len(dst))

	h := NewSHA256()
	var zPad [64]byte
	h.Write(zPad[:])
	h.Write(msg)
	h.Write([]byte{byte(len(out) >> 8), byte(len(out)), 0})
	h.Write(dstPrime)
	var b0, bi [32]byte
	h.Finalize(b0[:])

	for i := 1; i <= ell; i++ {
		h.Reset()
		if i == 1 {
			h.Write(b0[:])
		} else {
			var x [32]byte
			for j := range x {
				x[j] = b0[j] ^ bi[j]
			}
			h.Write(x[:])
		}
		h.Write([]byte{byte(i)})
		h.Write(dstPrime)
		h.Finalize(bi[:])
		copy(out[(i-1)*32:], bi[:])
	}
	return nil
}

// HashToField expands msg into a field element. The 56 uniform bytes are
// read little-endian; values at or above p are reduced.
func HashToField(msg, dst []byte) (*FieldElement, error) {
	var buf [FieldBytes]byte
	if err := ExpandMessageXMD(buf[:], msg, dst); err != nil {
		return nil, err
	}
	var r FieldElement
	if _, err := r.SetBytes(buf[:]); err != nil {
		return nil, err
	}
	r = r.canonical()
	return &r, nil
}

// HashToPoint hashes msg to an even point of E through HashToField and the
// Decaf Elligator map
func HashToPoint(msg, dst []byte) (*Affine, error) {
	r, err := HashToField(msg, dst)
	if err != nil {
		return nil, err
	}
	var a Affine
	Elligator2sInject(&a, r)
	return &a, nil
}
