package goldilocks

// The 4-isogenies between E and E'.
//
//	phi:  E  -> E',  (x, y) -> (2xy/(y^2-x^2), (y^2+x^2)/(2-y^2-x^2))
//	phi': E' -> E,   (x, y) -> (2xy/(y^2+x^2), (y^2-x^2)/(2-y^2+x^2))
//
// phi' o phi = [4] on E and phi o phi' = [4] on E'. The kernel of phi is
// E[4], so phi(P) only depends on P modulo the 4-torsion.

// doublingTerms returns A = X^2, B = Y^2, C = 2Z^2 and E = 2XY
func doublingTerms(x, y, z *FieldElement) (a, b, c, e FieldElement) {
	a.sqr(x)
	b.sqr(y)
	c.sqr(z)
	c.add(&c, &c)
	e.add(x, y)
	e.sqr(&e)
	e.sub(&e, &a)
	e.sub(&e, &b)
	return
}

// TwistAndDouble sets r = phi(a). Doubling a and mapping the result to the
// twist gives the same point.
func (r *TwExtensible) TwistAndDouble(a *Extensible) {
	var f, g, h FieldElement
	aa, bb, cc, e := doublingTerms(&a.x, &a.y, &a.z)
	g.add(&aa, &bb)
	f.sub(&bb, &aa)
	h.sub(&cc, &g)

	r.x.mul(&e, &h)
	r.y.mul(&g, &f)
	r.z.mul(&f, &h)
	r.t = e
	r.u = g
}

// UntwistAndDouble sets r = phi'(a), a point of the prime-order subgroup of E
func (r *Extensible) UntwistAndDouble(a *TwExtensible) {
	var f, g, h FieldElement
	aa, bb, cc, e := doublingTerms(&a.x, &a.y, &a.z)
	g.add(&bb, &aa)
	f.sub(&bb, &aa)
	h.sub(&cc, &f)

	r.x.mul(&e, &h)
	r.y.mul(&f, &g)
	r.z.mul(&g, &h)
	r.t = e
	r.u = f
}

// UntwistAndDoubleAndSerialize sets b to the Decaf encoding of phi'(a)
// without building the extensible image. The image is even, so no torsion
// adjustment is needed before encoding.
func UntwistAndDoubleAndSerialize(b *FieldElement, a *TwExtensible) {
	var f, g, h, x0, z0, t0 FieldElement
	aa, bb, cc, e := doublingTerms(&a.x, &a.y, &a.z)
	g.add(&bb, &aa)
	f.sub(&bb, &aa)
	h.sub(&cc, &f)

	x0.mul(&e, &h)
	z0.mul(&g, &h)
	t0.mul(&e, &f)
	decafEncode(b, &x0, &z0, &t0)
}

// TwistEven sets r to the point of E' whose double is phi(a). The input must
// be even (see IsEven); odd input gives an unspecified result. The root is
// chosen so the result is determined up to the 2-torsion point (0, -1) of
// E'. The identity and (0, -1) map to the identity, as do (+-1, 0), where
// the map has a removable singularity. Costs one inverse square root.
func (r *TwExtensible) TwistEven(a *Extensible) {
	var w, l, rr, t FieldElement
	w.sqr(&a.z)
	t.sqr(&a.x)
	w.sub(&w, &t) // Z^2 - X^2

	t.sqr(&a.y)
	t.mul(&t, &w)
	l.isr(&t)
	rr.mul(&w, &a.y)
	rr.mul(&rr, &l)

	r.x.mul(&a.x, &rr)
	r.y.mul(&a.y, &rr)
	r.z.sqr(&rr)
	r.t = a.x
	r.u = a.y

	var id TwExtensible
	id.SetIdentity()
	r.cmov(&id, w.isZero())
}

// IsEven returns true if a is in 2*E, the points whose Decaf class contains
// a point of the prime-order subgroup without a (1, 0) translation. On E
// this is exactly 1 - x^2 being a nonzero square.
func (a *Extensible) IsEven() Mask {
	var w, t FieldElement
	w.sqr(&a.z)
	t.sqr(&a.x)
	w.sub(&w, &t)
	return w.isSquare() & ^w.isZero()
}

// IsEven returns true if a is in 2*E', which on E' is 1 + x^2 being a square
func (a *TwExtensible) IsEven() Mask {
	var w, t FieldElement
	w.sqr(&a.z)
	t.sqr(&a.x)
	w.add(&w, &t)
	return w.isSquare()
}
