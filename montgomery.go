package goldilocks

// Montgomery ladders.
//
// Montgomery runs on the curve M': v^2 = u^3 + A'u^2 + u, A' = 2(d+1)/(d-1),
// reached from E by u' = -(1+y)/(1-y). The ladder is fed the s-form
// encoding (see SerializeExtensible) of the base point and returns the
// s-form encoding of the multiple.
//
// MontgomeryAux runs on curve448 (A = 156326), reached from E by u = s^2
// where s is the Decaf encoding. It is fed and returns Decaf encodings.
//
// Both keep R0 = (xd : zd) and R1 = (xa : za) with R1 - R0 equal to the base
// point. Step sets (R0, R1) = (2*R0, R0 + R1); the caller picks the bit by
// swapping the registers before and after the step, see Ladder.

// Montgomery is the ladder state on M'
type Montgomery struct {
	z0, xd, zd, xa, za FieldElement
}

// MontgomeryAux is the ladder state on curve448. (xs : zs) tracks R0 + R1,
// which lets SerializeDecaf check the state for consistency.
type MontgomeryAux struct {
	s0, xd, zd, xa, za, xs, zs FieldElement
}

// Deserialize loads the base point with s-form encoding sbz: R0 is the
// identity and R1 = (1 : sbz^2), the base point u' = 1/sbz^2.
func (m *Montgomery) Deserialize(sbz *FieldElement) {
	m.z0.sqr(sbz)
	m.xd = feOne
	m.zd = feZero
	m.xa = feOne
	m.za = m.z0
}

// Step sets (R0, R1) = (2*R0, R0 + R1)
func (m *Montgomery) Step() {
	var da, cb, aa, bb, e, t FieldElement

	// differential addition, difference (1 : z0)
	da.sub(&m.xa, &m.za)
	t.add(&m.xd, &m.zd)
	da.mul(&da, &t)
	cb.add(&m.xa, &m.za)
	t.sub(&m.xd, &m.zd)
	cb.mul(&cb, &t)
	t.add(&da, &cb)
	t.sqr(&t)
	m.xa.mul(&t, &m.z0)
	t.sub(&da, &cb)
	m.za.sqr(&t)

	// doubling
	aa.add(&m.xd, &m.zd)
	aa.sqr(&aa)
	bb.sub(&m.xd, &m.zd)
	bb.sqr(&bb)
	e.sub(&aa, &bb)
	aa.mul(&aa, &oneMinusD)
	m.xd.mul(&aa, &bb)
	t.sub(&aa, &e)
	m.zd.mul(&e, &t)
}

// CondSwap swaps R0 and R1 if c is true
func (m *Montgomery) CondSwap(c Mask) {
	cswap(&m.xd, &m.xa, c)
	cswap(&m.zd, &m.za, c)
}

// Serialize sets b to the s-form encoding of R0. sbz must be the encoding
// the ladder was loaded with: the sign of the result is recovered from it
// by Okeya-Sakurai y-recovery. The mask is false if the registers are not
// consistent with a multiple of the base point.
func (m *Montgomery) Serialize(b *FieldElement, sbz *FieldElement) Mask {
	var t1, t2, t3, t4, x, y, z, w FieldElement

	// Okeya-Sakurai with the base (1/z0, 1), scaled through by z0^2
	t1.mul(&m.z0, &m.xd)
	t2.add(&t1, &m.zd)
	t4.mul(&montPrimeTwoA, &m.z0)
	t4.mul(&t4, &m.zd)
	t2.add(&t2, &t4) // z0*xd + zd + 2A'*z0*zd
	t3.mul(&m.z0, &m.zd)
	t3.add(&t3, &m.xd) // xd + z0*zd
	t2.mul(&t2, &t3)
	t3.mul(&t4, &m.z0)
	t3.mul(&t3, &m.zd) // 2A'*z0^2*zd^2
	t2.sub(&t2, &t3)
	t2.mul(&t2, &m.za)
	t3.sub(&t1, &m.zd)
	t3.sqr(&t3)
	t3.mul(&t3, &m.xa)
	y.sub(&t2, &t3)

	t1.mul(&m.zd, &m.za)
	t1.add(&t1, &t1)
	x.mul(&t1, &m.xd)
	z.mul(&t1, &m.zd)

	// W = Y*(X-Z)*sbz*(1-sbz^2) fixes the quadratic class of the result
	w.sub(&x, &z)
	w.mul(&w, &y)
	w.mul(&w, sbz)
	t1.sub(&feOne, &m.z0)
	w.mul(&w, &t1)

	// b = W*zd^2 / sqrt(xd*zd^3*W^2), a root of zd/xd
	t1.sqr(&m.zd)
	t2.mul(&t1, &m.zd)
	t2.mul(&t2, &m.xd)
	t3.sqr(&w)
	t2.mul(&t2, &t3)
	t2.isr(&t2)
	t1.mul(&t1, &w)
	b.mul(&t1, &t2)

	// R1 at infinity leaves R0 = -base, whose encoding is -sbz
	zaZero := m.za.isZero()
	t1.negate(sbz)
	b.cmov(&t1, zaZero)

	t1.sqr(b)
	t1.mul(&t1, &m.xd)
	return t1.equal(&m.zd) | m.zd.isZero() | m.xd.isZero() | zaZero
}

// DeserializeDecaf loads the base point with Decaf encoding s: R0 is the
// identity and R1 = (s^2 : 1). The returned mask is the validity of s as a
// Decaf encoding, the identity included.
func (m *MontgomeryAux) DeserializeDecaf(s *FieldElement) Mask {
	var a Affine
	valid := DecafDeserializeAffine(&a, s, true)

	m.s0 = *s
	m.xd = feOne
	m.zd = feZero
	m.xa.sqr(s)
	m.za = feOne
	m.xs = m.xa
	m.zs = feOne
	return valid
}

// xadd returns the differential sum of (x1 : z1) and (x2 : z2) whose
// difference is (u0 : 1)
func xadd(x1, z1, x2, z2, u0 *FieldElement) (x, z FieldElement) {
	var da, cb, t FieldElement
	da.sub(x2, z2)
	t.add(x1, z1)
	da.mul(&da, &t)
	cb.add(x2, z2)
	t.sub(x1, z1)
	cb.mul(&cb, &t)
	x.add(&da, &cb)
	x.sqr(&x)
	z.sub(&da, &cb)
	z.sqr(&z)
	z.mul(&z, u0)
	return
}

// Step sets (R0, R1) = (2*R0, R0 + R1) and refreshes the sum register
func (m *MontgomeryAux) Step() {
	var u0, aa, bb, e, t FieldElement
	u0.sqr(&m.s0)

	m.xa, m.za = xadd(&m.xd, &m.zd, &m.xa, &m.za, &u0)

	aa.add(&m.xd, &m.zd)
	aa.sqr(&aa)
	bb.sub(&m.xd, &m.zd)
	bb.sqr(&bb)
	e.sub(&aa, &bb)
	m.xd.mul(&aa, &bb)
	t.mul(&e, &montA24)
	t.add(&t, &bb)
	m.zd.mul(&e, &t)

	m.xs, m.zs = xadd(&m.xd, &m.zd, &m.xa, &m.za, &u0)
}

// CondSwap swaps R0 and R1 if c is true. The sum register is symmetric.
func (m *MontgomeryAux) CondSwap(c Mask) {
	cswap(&m.xd, &m.xa, c)
	cswap(&m.zd, &m.za, c)
}

// SerializeDecaf sets b to the Decaf encoding of R0. The base point's v
// coordinate is re-derived from s0 with the sign the Decaf encoding fixes,
// then R0 is lifted by Okeya-Sakurai y-recovery. Of the two roots of u the
// encoding is the one with the Decaf sign rule applied to 2*sqrt(-d)*u/v.
//
// The mask is false if the sum register does not satisfy
// x(S)*x(Q)*(x0 - x1)^2 = (x0*x1 - 1)^2, or no root exists.
func (m *MontgomeryAux) SerializeDecaf(b *FieldElement) Mask {
	var u, q, r, v, w, t1, t2, t3, t4, x, y, z FieldElement

	// base point (u, v)
	u.sqr(&m.s0)
	q.add(&u, &montA)
	q.mul(&q, &u)
	q.add(&q, &feOne)
	r.isr(&q)
	w.mul(&sqrtMinusD, &m.s0)
	w.add(&w, &w)
	w.mul(&w, &r)
	r.condNegate(w.isNegative())
	v.mul(&m.s0, &q)
	v.mul(&v, &r)

	// Okeya-Sakurai
	t1.mul(&u, &m.zd)
	t2.add(&m.xd, &t1)
	t3.sub(&m.xd, &t1)
	t3.sqr(&t3)
	t3.mul(&t3, &m.xa)
	t1.mul(&montTwoA, &m.zd)
	t2.add(&t2, &t1)
	t4.mul(&u, &m.xd)
	t4.add(&t4, &m.zd)
	t2.mul(&t2, &t4)
	t1.mul(&t1, &m.zd)
	t2.sub(&t2, &t1)
	t2.mul(&t2, &m.za)
	y.sub(&t2, &t3)
	t1.mul(&v, &m.zd)
	t1.mul(&t1, &m.za)
	t1.add(&t1, &t1)
	x.mul(&t1, &m.xd)
	z.mul(&t1, &m.zd)

	// pick X/rr or Z/rr, rr = sqrt(X*Z)
	var eps Mask
	t1.inv(&y)
	t1.mul(&t1, &x)
	t1.mul(&t1, &sqrtMinusD)
	t1.add(&t1, &t1)
	eps = ^t1.isNegative()

	t2.mul(&x, &z)
	t3.isr(&t2)
	t4.sqr(&t3)
	t4.mul(&t4, &t2)
	rootOK := t4.equal(&feOne)

	t1.mul(&z, &t3)
	t4.mul(&x, &t3)
	t1.cmov(&t4, eps)
	b.abs(&t1)
	yZero := y.isZero()
	b.cmov(&feZero, yZero)

	// R1 at infinity leaves R0 = -base, encoded as |1/s0|. Okeya-Sakurai
	// degenerates to y = 0 there.
	zaZero := m.za.isZero()
	t1.inv(&m.s0)
	t1.abs(&t1)
	b.cmov(&t1, zaZero)
	yZero &^= zaZero

	// sum register check
	t1.mul(&m.xd, &m.za)
	t2.mul(&m.xa, &m.zd)
	t1.sub(&t1, &t2)
	t1.sqr(&t1)
	t1.mul(&t1, &u)
	t1.mul(&t1, &m.xs)
	t2.mul(&m.xd, &m.xa)
	t3.mul(&m.zd, &m.za)
	t2.sub(&t2, &t3)
	t2.sqr(&t2)
	t2.mul(&t2, &m.zs)
	sumOK := t1.equal(&t2)

	return sumOK & (rootOK | yZero | zaZero | m.zd.isZero())
}

// LadderState is a Montgomery ladder accumulator
type LadderState interface {
	Step()
	CondSwap(c Mask)
}

// Ladder multiplies the point loaded in state by the scalar k, given as
// little-endian bytes, using its low bits bits, most significant first.
// The bit count is public; the bits themselves only reach CondSwap.
func Ladder(state LadderState, k []byte, bits int) {
	if bits > 8*len(k) {
		panic("goldilocks: ladder bit count exceeds scalar length")
	}
	for i := bits - 1; i >= 0; i-- {
		bit := maskFromBit(uint64(k[i>>3] >> uint(i&7)))
		state.CondSwap(bit)
		state.Step()
		state.CondSwap(bit)
	}
}
