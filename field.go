package goldilocks

import (
	"crypto/subtle"
	"fmt"

	fp "github.com/cloudflare/circl/math/fp448"
)

// FieldBytes is the size of an encoded field element (56 bytes, little-endian)
const FieldBytes = fp.Size

// Mask is a constant-time boolean: all bits set for true, all bits clear for false.
// Masks are never partially set.
type Mask uint64

const (
	MaskFalse Mask = 0
	MaskTrue  Mask = ^Mask(0)
)

// maskFromBit expands the low bit of b into a full mask
func maskFromBit(b uint64) Mask {
	return Mask(-(b & 1))
}

// boolToMask converts a public boolean into a mask
func boolToMask(b bool) Mask {
	var v uint64
	if b {
		v = 1
	}
	return maskFromBit(v)
}

// Bool returns the mask as a boolean. Only use this on values that are
// allowed to become public, such as the final validity of a decoding.
func (m Mask) Bool() bool {
	return m&1 == 1
}

// bit returns 0 or 1, the form expected by the field layer's cmov/cswap
func (m Mask) bit() uint {
	return uint(m & 1)
}

// FieldElement is an element of GF(2^448 - 2^224 - 1).
// The arithmetic is delegated to circl's fp448 package; this type adds the
// mask-based constant-time predicates the point formulas are written against.
type FieldElement struct {
	e fp.Elt
}

// fieldOp identifies a field operation for the op trace
type fieldOp uint8

const (
	opAdd fieldOp = iota
	opSub
	opMul
	opSqr
	opInv
	opIsr
	opNeg
	opCmov
	opCswap
	opReduce
)

// fieldTrace, when set, is called for every field operation. Tests use it to
// check that secret inputs do not change the sequence of operations.
var fieldTrace func(op fieldOp)

func trace(op fieldOp) {
	if fieldTrace != nil {
		fieldTrace(op)
	}
}

// SetBytes decodes a 56-byte little-endian field element.
// The returned mask is true only if b was the canonical encoding (< p).
func (r *FieldElement) SetBytes(b []byte) (Mask, error) {
	if len(b) != FieldBytes {
		return MaskFalse, fmt.Errorf("%w: field element must be %d bytes", ErrBufferSize, FieldBytes)
	}
	copy(r.e[:], b)
	c := r.canonical()
	return boolToMask(subtle.ConstantTimeCompare(c.e[:], b) == 1), nil
}

// Bytes returns the canonical 56-byte little-endian encoding
func (r *FieldElement) Bytes() [FieldBytes]byte {
	c := r.canonical()
	return c.e
}

// setInt sets a field element to a small non-negative integer
func (r *FieldElement) setInt(a uint64) {
	r.e = fp.Elt{}
	for i := 0; i < 8; i++ {
		r.e[i] = byte(a >> (8 * i))
	}
}

// fieldInt returns the field element a
func fieldInt(a uint64) (r FieldElement) {
	r.setInt(a)
	return r
}

// setNegInt sets a field element to -a
func (r *FieldElement) setNegInt(a uint64) {
	var t FieldElement
	t.setInt(a)
	r.negate(&t)
}

// canonical returns the fully reduced copy of r
func (r *FieldElement) canonical() FieldElement {
	trace(opReduce)
	c := *r
	fp.Modp(&c.e)
	return c
}

// add sets r = a + b
func (r *FieldElement) add(a, b *FieldElement) {
	trace(opAdd)
	fp.Add(&r.e, &a.e, &b.e)
}

// sub sets r = a - b
func (r *FieldElement) sub(a, b *FieldElement) {
	trace(opSub)
	fp.Sub(&r.e, &a.e, &b.e)
}

// mul sets r = a * b
func (r *FieldElement) mul(a, b *FieldElement) {
	trace(opMul)
	fp.Mul(&r.e, &a.e, &b.e)
}

// sqr sets r = a^2
func (r *FieldElement) sqr(a *FieldElement) {
	trace(opSqr)
	fp.Sqr(&r.e, &a.e)
}

// negate sets r = -a
func (r *FieldElement) negate(a *FieldElement) {
	trace(opNeg)
	fp.Neg(&r.e, &a.e)
}

// inv sets r = 1/a (Fermat), with 1/0 = 0
func (r *FieldElement) inv(a *FieldElement) {
	trace(opInv)
	var t fp.Elt
	fp.Inv(&t, &a.e)
	r.e = t
}

// isr sets r to the inverse square root of a that is itself a square,
// when a is a nonzero square. For a non-square a, r = sqrt(-1/a), so
// a*r^2 = -1 (fp448.InvSqrt returns sqrt(-x/y) when x/y is not a square).
// Zero gives zero. Callers tell the cases apart by a*r^2.
func (r *FieldElement) isr(a *FieldElement) {
	trace(opIsr)
	var t fp.Elt
	fp.InvSqrt(&t, &feOne.e, &a.e)
	r.e = t
}

// cmov sets r = a if m is true, otherwise leaves r unchanged
func (r *FieldElement) cmov(a *FieldElement, m Mask) {
	trace(opCmov)
	fp.Cmov(&r.e, &a.e, m.bit())
}

// cswap swaps a and b if m is true
func cswap(a, b *FieldElement, m Mask) {
	trace(opCswap)
	fp.Cswap(&a.e, &b.e, m.bit())
}

// condNegate negates r if m is true
func (r *FieldElement) condNegate(m Mask) {
	var n FieldElement
	n.negate(r)
	r.cmov(&n, m)
}

// isZero returns true if r is zero mod p
func (r *FieldElement) isZero() Mask {
	c := r.canonical()
	var acc byte
	for i := range c.e {
		acc |= c.e[i]
	}
	return maskFromBit(uint64(subtle.ConstantTimeByteEq(acc, 0)))
}

// equal returns true if r and a are equal mod p
func (r *FieldElement) equal(a *FieldElement) Mask {
	var d FieldElement
	d.sub(r, a)
	return d.isZero()
}

// isNegative returns the low bit of the canonical value, the sign convention
// of the Decaf encodings
func (r *FieldElement) isNegative() Mask {
	c := r.canonical()
	return maskFromBit(uint64(c.e[0]))
}

// abs sets r to whichever of a, -a is non-negative
func (r *FieldElement) abs(a *FieldElement) {
	*r = *a
	r.condNegate(a.isNegative())
}

// isSquare returns true if r is a quadratic residue (zero included)
func (r *FieldElement) isSquare() Mask {
	var s, t FieldElement
	s.isr(r)
	t.sqr(&s)
	t.mul(&t, r)
	return t.equal(&feOne) | r.isZero()
}

// sqrtRatio computes the RFC 9496 SQRT_RATIO_M1(u, v): r is the
// non-negative square root of u/v when it exists (wasSquare true), and the
// non-negative square root of -u/v otherwise.
func sqrtRatio(r, u, v *FieldElement) (wasSquare Mask) {
	var t, check FieldElement
	trace(opIsr)
	fp.InvSqrt(&t.e, &u.e, &v.e)
	check.sqr(&t)
	check.mul(&check, v)
	wasSquare = check.equal(u)
	r.abs(&t)
	return wasSquare
}

// FieldIsSquare reports whether x is a quadratic residue
func FieldIsSquare(x *FieldElement) Mask {
	return x.isSquare()
}
