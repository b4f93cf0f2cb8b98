package goldilocks

// Group law on E and E'. All formulas are the unified extended twisted
// Edwards formulas of Hisil, Wong, Carter and Dawson (a = -1 on the twist,
// a = 1 on the base curve), written against the extensible coordinates so
// the T*U product is only computed when an addition needs it.

// Double sets r = 2*r on the twisted curve. The input T and U are not read.
func (r *TwExtensible) Double() {
	var a, b, c, e, f, g, h FieldElement
	a.sqr(&r.x)
	b.sqr(&r.y)
	c.sqr(&r.z)
	c.add(&c, &c)

	// E = (X+Y)^2 - A - B = 2XY
	e.add(&r.x, &r.y)
	e.sqr(&e)
	g.add(&b, &a)
	e.sub(&e, &g)

	f.sub(&b, &a)
	h.sub(&c, &f)

	r.x.mul(&e, &h)
	r.y.mul(&g, &f)
	r.z.mul(&f, &h)
	r.t = e
	r.u = g
}

// Double sets r = 2*r on the base curve. The input T and U are not read.
func (r *Extensible) Double() {
	var a, b, c, e, f, g, h FieldElement
	a.sqr(&r.x)
	b.sqr(&r.y)
	c.sqr(&r.z)
	c.add(&c, &c)

	e.add(&r.x, &r.y)
	e.sqr(&e)
	g.add(&a, &b)
	e.sub(&e, &g)

	f.sub(&b, &a)
	h.sub(&c, &g)

	r.x.mul(&e, &h)
	r.y.mul(&f, &g)
	r.z.mul(&g, &h)
	r.t = e
	r.u = f
}

// addNiels is the shared body of the Niels additions: d is the Z of the
// accumulator scaled by the Z of the addend (2*Z for half-Niels).
func (r *TwExtensible) addNiels(n *TwNiels, d *FieldElement) {
	var a, b, c, e, f, g, h FieldElement
	a.sub(&r.y, &r.x)
	a.mul(&a, &n.a)
	b.add(&r.y, &r.x)
	b.mul(&b, &n.b)
	c.mul(&r.t, &r.u)
	c.mul(&c, &n.c)

	e.sub(&b, &a)
	f.sub(d, &c)
	g.add(d, &c)
	h.add(&b, &a)

	r.x.mul(&e, &f)
	r.y.mul(&g, &h)
	r.z.mul(&f, &g)
	r.t = e
	r.u = h
}

// AddTwNiels sets r = r + n. The formula is unified: it is correct for
// r = n, r = -n and the identity.
func (r *TwExtensible) AddTwNiels(n *TwNiels) {
	var d FieldElement
	d.add(&r.z, &r.z)
	r.addNiels(n, &d)
}

// SubTwNiels sets r = r - n
func (r *TwExtensible) SubTwNiels(n *TwNiels) {
	m := *n
	m.CondNegate(MaskTrue)
	r.AddTwNiels(&m)
}

// AddTwPNiels sets r = r + n
func (r *TwExtensible) AddTwPNiels(n *TwPNiels) {
	var d FieldElement
	d.mul(&r.z, &n.z)
	r.addNiels(&n.n, &d)
}

// SubTwPNiels sets r = r - n
func (r *TwExtensible) SubTwPNiels(n *TwPNiels) {
	m := *n
	m.CondNegate(MaskTrue)
	r.AddTwPNiels(&m)
}
