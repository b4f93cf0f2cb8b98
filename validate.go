package goldilocks

// Validate returns true if a is on E
func (a *Affine) Validate() Mask {
	var xx, yy, l, r FieldElement
	xx.sqr(&a.x)
	yy.sqr(&a.y)
	l.add(&xx, &yy)
	r.mul(&xx, &yy)
	r.mul(&r, &curveD)
	r.add(&r, &feOne)
	return l.equal(&r)
}

// Validate returns true if a is on E'
func (a *TwAffine) Validate() Mask {
	var xx, yy, l, r FieldElement
	xx.sqr(&a.x)
	yy.sqr(&a.y)
	l.sub(&yy, &xx)
	r.mul(&xx, &yy)
	r.mul(&r, &twistD)
	r.add(&r, &feOne)
	return l.equal(&r)
}

// validateExtensible checks the projective curve equation
// Z^2 (aX^2 + Y^2) = Z^4 + d X^2 Y^2, the extension relation X*Y = T*U*Z
// and Z != 0. twist selects a = -1 and d'.
func validateExtensible(x, y, z, t, u *FieldElement, twist bool) Mask {
	var xx, yy, zz, l, r, c FieldElement
	xx.sqr(x)
	yy.sqr(y)
	zz.sqr(z)

	c = curveD
	if twist {
		l.sub(&yy, &xx)
		c = twistD
	} else {
		l.add(&yy, &xx)
	}
	l.mul(&l, &zz)
	r.mul(&xx, &yy)
	r.mul(&r, &c)
	zz.sqr(&zz)
	r.add(&r, &zz)
	onCurve := l.equal(&r)

	l.mul(x, y)
	r.mul(t, u)
	r.mul(&r, z)
	return onCurve & l.equal(&r) & ^z.isZero()
}

// Validate returns true if a is a well-formed extensible point on E
func (a *Extensible) Validate() Mask {
	return validateExtensible(&a.x, &a.y, &a.z, &a.t, &a.u, false)
}

// Validate returns true if a is a well-formed extensible point on E'
func (a *TwExtensible) Validate() Mask {
	return validateExtensible(&a.x, &a.y, &a.z, &a.t, &a.u, true)
}

// Equal returns true if a and b are the same point
func (a *Affine) Equal(b *Affine) Mask {
	return a.x.equal(&b.x) & a.y.equal(&b.y)
}

// Equal returns true if a and b are the same point
func (a *TwAffine) Equal(b *TwAffine) Mask {
	return a.x.equal(&b.x) & a.y.equal(&b.y)
}

// projectiveEqual compares (x1 : y1 : z1) and (x2 : y2 : z2)
func projectiveEqual(x1, y1, z1, x2, y2, z2 *FieldElement) Mask {
	var l, r FieldElement
	l.mul(x1, z2)
	r.mul(x2, z1)
	eq := l.equal(&r)
	l.mul(y1, z2)
	r.mul(y2, z1)
	return eq & l.equal(&r)
}

// Equal returns true if a and b are the same point
func (a *Extensible) Equal(b *Extensible) Mask {
	return projectiveEqual(&a.x, &a.y, &a.z, &b.x, &b.y, &b.z)
}

// Equal returns true if a and b are the same point
func (a *TwExtensible) Equal(b *TwExtensible) Mask {
	return projectiveEqual(&a.x, &a.y, &a.z, &b.x, &b.y, &b.z)
}

// DecafEqual returns true if a and b differ by a point of E[4]. The coset
// of P is {(x, y), (-x, -y), (y, -x), (-y, x)}.
func (a *Extensible) DecafEqual(b *Extensible) Mask {
	var l, r FieldElement
	l.mul(&a.x, &b.y)
	r.mul(&a.y, &b.x)
	same := l.equal(&r)

	l.mul(&a.x, &b.x)
	r.mul(&a.y, &b.y)
	l.add(&l, &r)
	return same | l.isZero()
}

// DecafEqual returns true if a and b differ by a point of E'[4]. P and
// P + (0, -1) share the ratio x/y, as does tau(-P), which the second test
// tells apart. tau(P) and tau(P) + (0, -1) have ratio -x/y and satisfy
// d'*x1^2*y2^2 = 1.
func (a *TwExtensible) DecafEqual(b *TwExtensible) Mask {
	var l, r, n, t, zz FieldElement
	l.mul(&a.x, &b.y)
	r.mul(&a.y, &b.x)

	// (x2, y2) = +-(x1, y1)
	t.mul(&a.x, &b.z)
	n.mul(&b.x, &a.z)
	t.sqr(&t)
	n.sqr(&n)
	same := l.equal(&r) & t.equal(&n)

	// (x2, y2) = +-tau(x1, y1)
	n.negate(&r)
	t.sqr(&l)
	t.mul(&t, &twistD)
	zz.mul(&a.z, &b.z)
	zz.sqr(&zz)
	translated := l.equal(&n) & t.equal(&zz)

	return same | translated
}
