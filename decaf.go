package goldilocks

import "fmt"

// Point encodings.
//
// Two encodings of E are implemented. The s-form, s = sqrt((y-1)/(y+1)),
// is the encoding the plain Montgomery ladder works in; it identifies P and
// P + (0, -1) and is only defined on even points. The Decaf encoding is
// decaf448 from RFC 9496: it identifies the whole coset P + E[4] and is
// the encoding used on the wire. The twisted curve has its own Decaf
// encoding with the same sign conventions.

// SerializeExtensible sets b to the s-form encoding of a, which must be
// even. The identity encodes as 0.
func SerializeExtensible(b *FieldElement, a *Extensible) {
	var num, t, u FieldElement
	num.sub(&a.y, &a.z)
	num.mul(&num, &a.x) // X(Y-Z)

	t.sqr(&a.y)
	u.sqr(&a.z)
	t.sub(&t, &u)
	u.sqr(&a.x)
	t.mul(&t, &u) // X^2(Y^2-Z^2)
	t.isr(&t)
	b.mul(&num, &t)
}

// sformTerms returns D = 1 - s^2, N = d(1+s^2)^2 - D^2, 1 + s^2 and
// rho = 1/sqrt(N*D^2), with ok true if that root exists
func sformTerms(s *FieldElement) (dd, n, onePlus, rho FieldElement, ok Mask) {
	var ss, t FieldElement
	ss.sqr(s)
	dd.sub(&feOne, &ss)
	onePlus.add(&feOne, &ss)
	n.sqr(&onePlus)
	n.mul(&n, &curveD)
	t.sqr(&dd)
	n.sub(&n, &t)

	t.mul(&t, &n)
	rho.isr(&t)
	ss.sqr(&rho)
	ss.mul(&ss, &t)
	ok = ss.equal(&feOne)
	return
}

// DeserializeAffine sets a to the even point with s-form encoding s. The
// mask is false if s does not encode a point; s = +-1 is refused.
func DeserializeAffine(a *Affine, s *FieldElement) Mask {
	dd, n, onePlus, rho, ok := sformTerms(s)

	var t FieldElement
	a.x.mul(s, &dd)
	a.x.add(&a.x, &a.x)
	a.x.mul(&a.x, &rho)

	t.sqr(&rho)
	t.mul(&t, &n)
	t.mul(&t, &dd)
	a.y.mul(&t, &onePlus)
	return ok
}

// DeserializeAndTwistApprox sets a to TwistEven of the point with s-form
// encoding s, without building the base-curve point first. The mask is
// false if s does not encode a point; s = +-1, the encodings of the
// 2-torsion points of the parameter line, are refused.
func DeserializeAndTwistApprox(a *TwExtensible, s *FieldElement) Mask {
	dd, n, onePlus, rho, ok := sformTerms(s)

	var r, t FieldElement
	r.mul(&n, &dd)
	r.mul(&r, &rho)

	t.mul(s, &dd)
	t.add(&t, &t)
	a.x.mul(&t, &twistSqrtD)
	a.y.mul(&r, &onePlus)
	a.y.mul(&a.y, &twistSqrtD)
	a.z.mul(&onePlus, &dd)
	a.z.mul(&a.z, &twistD)
	a.t.add(s, s)
	a.u = r
	return ok
}

// decafEncode is the decaf448 encoding of the even extended point
// (x0 : _ : z0 : t0)
func decafEncode(s, x0, z0, t0 *FieldElement) {
	var u1, u2, t, invsqrt, ratio FieldElement
	u1.add(x0, t0)
	t.sub(x0, t0)
	u1.mul(&u1, &t)

	t.sqr(x0)
	t.mul(&t, &u1)
	t.mul(&t, &oneMinusD)
	sqrtRatio(&invsqrt, &feOne, &t)

	ratio.mul(&invsqrt, &u1)
	ratio.mul(&ratio, &sqrtMinusD)
	ratio.abs(&ratio)

	u2.mul(&invSqrtMinusD, &ratio)
	u2.mul(&u2, z0)
	u2.sub(&u2, t0)

	t.mul(&oneMinusD, &invsqrt)
	t.mul(&t, x0)
	t.mul(&t, &u2)
	s.abs(&t)
}

// DecafSerializeExtensible sets b to the Decaf encoding of a. All four
// points of a + E[4] give the same encoding: odd points are first moved by
// (1, 0), which maps (X, Y, Z, T*U) to (Y, -X, Z, -T*U).
func DecafSerializeExtensible(b *FieldElement, a *Extensible) {
	odd := ^a.IsEven()

	var x0, t0 FieldElement
	x0 = a.x
	x0.cmov(&a.y, odd)
	t0.mul(&a.t, &a.u)
	t0.condNegate(odd)
	decafEncode(b, &x0, &a.z, &t0)
}

// DecafDeserializeAffine sets a to the point with Decaf encoding s. The mask
// is false if s is negative or not an encoding, or if s encodes the identity
// and allowIdentity is false. s = 0 decodes to (0, 1).
func DecafDeserializeAffine(a *Affine, s *FieldElement, allowIdentity bool) Mask {
	var ss, u1, u2, u3, t, invsqrt FieldElement
	ss.sqr(s)
	u1.add(&feOne, &ss)
	u2.sqr(&u1)
	t.mul(&curveDFour, &ss)
	u2.sub(&u2, &t)

	t.sqr(&u1)
	t.mul(&t, &u2)
	wasSquare := sqrtRatio(&invsqrt, &feOne, &t)

	u3.add(s, s)
	u3.mul(&u3, &invsqrt)
	u3.mul(&u3, &u1)
	u3.mul(&u3, &sqrtMinusD)
	u3.abs(&u3)

	a.x.mul(&u3, &invsqrt)
	a.x.mul(&a.x, &u2)
	a.x.mul(&a.x, &invSqrtMinusD)

	t.sub(&feOne, &ss)
	a.y.mul(&t, &invsqrt)
	a.y.mul(&a.y, &u1)
	// s = 0 gives (0, -1); hand back (0, 1) instead
	a.y.cmov(&feOne, s.isZero())

	return wasSquare & ^s.isNegative() & (boolToMask(allowIdentity) | ^s.isZero())
}

// DecafSerializeTwExtensible sets b to the Decaf encoding of a on the
// twisted curve. Odd points are first moved by the 4-torsion translation
// tau(x, y) = (1/(sqrt(d')*y), -1/(sqrt(d')*x)), so all of a + E'[4] give the
// same encoding.
func DecafSerializeTwExtensible(b *FieldElement, a *TwExtensible) {
	odd := ^a.IsEven()

	var x, y, z, tt, t FieldElement
	tt.mul(&a.t, &a.u)

	x.mul(&twistSqrtD, &a.x)
	x.cmov(&a.x, ^odd)
	y.mul(&twistSqrtD, &a.y)
	y.negate(&y)
	y.cmov(&a.y, ^odd)
	z.mul(&twistD, &tt)
	z.cmov(&a.z, ^odd)
	t.negate(&a.z)
	tt.cmov(&t, odd) // T' * U' = Z * -1

	// r = 1/sqrt((a-d')(Z+Y)(Z-Y))
	var r, u, n FieldElement
	r.add(&z, &y)
	n.sub(&z, &y)
	r.mul(&r, &n)
	r.mul(&r, &twistAMinusD)
	r.isr(&r)
	u.mul(&twistAMinusD, &r)

	n.mul(&u, &z)
	n.add(&n, &n)
	n.negate(&n)
	r.condNegate(n.isNegative())

	// s = |u * (Y - r*(Z*X + d'*Y*T))|
	n.mul(&z, &x)
	t.mul(&twistD, &y)
	t.mul(&t, &tt)
	n.add(&n, &t)
	n.mul(&n, &r)
	n.sub(&y, &n)
	n.mul(&n, &u)
	b.abs(&n)
}

// DecafDeserializeTwAffine sets a to the point of E' with twisted Decaf
// encoding s. The mask is false if s is negative or not an encoding, or if s
// encodes the identity and allowIdentity is false.
func DecafDeserializeTwAffine(a *TwAffine, s *FieldElement, allowIdentity bool) Mask {
	var ss, z, u, v, w, t FieldElement
	ss.sqr(s)
	z.sub(&feOne, &ss)
	u.sqr(&z)
	t.mul(&twistDFour, &ss)
	u.sub(&u, &t)

	t.mul(&u, &ss)
	v.isr(&t)
	w.sqr(&v)
	w.mul(&w, &t)
	sZero := s.isZero()
	ok := w.equal(&feOne) | sZero

	t.mul(&u, &v)
	v.condNegate(t.isNegative())

	t.sub(&feTwo, &z)
	w.mul(&v, s)
	w.mul(&w, &t)
	t.add(&w, &feOne)
	w.cmov(&t, sZero)

	t.inv(&z)
	a.x.add(s, s)
	a.x.mul(&a.x, &t)
	a.y = w

	return ok & ^s.isNegative() & (boolToMask(allowIdentity) | ^sZero)
}

// Elligator2sInject sets a to the decaf448 one-way map of r (RFC 9496
// MAP). The result is even and decodable, and MAP(0) is the identity.
func Elligator2sInject(a *Affine, r0 *FieldElement) {
	var r, u0, u1, t, v, vp, sgn, s, w0, w1, w2, w3 FieldElement
	r.sqr(r0)
	r.negate(&r)

	t.sub(&r, &feOne)
	u0.mul(&curveD, &t)
	u1.add(&u0, &feOne)
	t.sub(&u0, &r)
	u1.mul(&u1, &t)

	t.add(&r, &feOne)
	t.mul(&t, &u1)
	wasSquare := sqrtRatio(&v, &oneMinusTwoD, &t)

	vp.mul(r0, &v)
	vp.cmov(&v, wasSquare)
	sgn.negate(&feOne)
	sgn.cmov(&feOne, wasSquare)

	t.add(&r, &feOne)
	s.mul(&vp, &t)

	w0.abs(&s)
	w0.add(&w0, &w0)
	t.sqr(&s)
	w1.add(&t, &feOne)
	w2.sub(&t, &feOne)
	t.sub(&r, &feOne)
	w3.mul(&vp, &s)
	w3.mul(&w3, &t)
	w3.mul(&w3, &oneMinusTwoD)
	w3.add(&w3, &sgn)

	// (w0*w3 : w2*w1 : w1*w3)
	var zi FieldElement
	zi.mul(&w1, &w3)
	zi.inv(&zi)
	a.x.mul(&w0, &w3)
	a.x.mul(&a.x, &zi)
	a.y.mul(&w2, &w1)
	a.y.mul(&a.y, &zi)
}

// DecafEncode writes the 56-byte Decaf encoding of p to out
func DecafEncode(out []byte, p *Extensible) error {
	if len(out) != FieldBytes {
		return fmt.Errorf("%w: encoding must be %d bytes", ErrBufferSize, FieldBytes)
	}
	var s FieldElement
	DecafSerializeExtensible(&s, p)
	b := s.Bytes()
	copy(out, b[:])
	return nil
}

// DecafDecode parses a 56-byte Decaf encoding into p. Non-canonical field
// elements and negative encodings are rejected.
func DecafDecode(p *Affine, in []byte, allowIdentity bool) error {
	var s FieldElement
	canonical, err := s.SetBytes(in)
	if err != nil {
		return err
	}
	if !canonical.Bool() {
		return ErrInvalidEncoding
	}
	if !allowIdentity && s.isZero().Bool() {
		return ErrIdentity
	}
	if !DecafDeserializeAffine(p, &s, true).Bool() {
		return ErrInvalidEncoding
	}
	return nil
}
