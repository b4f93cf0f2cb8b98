package goldilocks

// Affine is a point (x, y) on the base curve E in affine coordinates.
// Edwards curves have no point at infinity, so every Affine value with valid
// coordinates is a group element.
type Affine struct {
	x, y FieldElement
}

// TwAffine is a point (x, y) on the twisted curve E' in affine coordinates
type TwAffine struct {
	x, y FieldElement
}

// Extensible is a point on E in extensible coordinates (X, Y, Z, T, U),
// representing (X/Z, Y/Z) with X*Y = T*U*Z. The product T*U is the extended
// coordinate of the point, kept split so the group law can defer the
// multiplication.
type Extensible struct {
	x, y, z, t, u FieldElement
}

// TwExtensible is a point on E' in extensible coordinates
type TwExtensible struct {
	x, y, z, t, u FieldElement
}

// TwNiels is the half-Niels form of an affine point on E':
// a = y - x, b = y + x, c = 2*d'*x*y.
type TwNiels struct {
	a, b, c FieldElement
}

// TwPNiels is the projective-Niels form of a point on E':
// a = Y - X, b = Y + X, c = 2*d'*T*U, z = 2*Z.
type TwPNiels struct {
	n TwNiels
	z FieldElement
}

// NewAffine returns the affine point (x, y). The coordinates are not checked;
// use Validate.
func NewAffine(x, y *FieldElement) *Affine {
	return &Affine{x: *x, y: *y}
}

// NewTwAffine returns the twisted affine point (x, y)
func NewTwAffine(x, y *FieldElement) *TwAffine {
	return &TwAffine{x: *x, y: *y}
}

// XY returns the affine coordinates
func (a *Affine) XY() (x, y FieldElement) {
	return a.x, a.y
}

// XY returns the affine coordinates
func (a *TwAffine) XY() (x, y FieldElement) {
	return a.x, a.y
}

// SetIdentity sets r to the neutral element (0, 1)
func (r *Affine) SetIdentity() {
	r.x = feZero
	r.y = feOne
}

// SetIdentity sets r to the neutral element (0, 1)
func (r *TwAffine) SetIdentity() {
	r.x = feZero
	r.y = feOne
}

// SetIdentity sets r to the neutral element (0 : 1 : 1), T = 0, U = 1
func (r *Extensible) SetIdentity() {
	r.x = feZero
	r.y = feOne
	r.z = feOne
	r.t = feZero
	r.u = feOne
}

// SetIdentity sets r to the neutral element (0 : 1 : 1), T = 0, U = 1
func (r *TwExtensible) SetIdentity() {
	r.x = feZero
	r.y = feOne
	r.z = feOne
	r.t = feZero
	r.u = feOne
}

// SetAffine sets r to the extensible form of a
func (r *Extensible) SetAffine(a *Affine) {
	r.x = a.x
	r.y = a.y
	r.z = feOne
	r.t = a.x
	r.u = a.y
}

// SetTwAffine sets r to the extensible form of a
func (r *TwExtensible) SetTwAffine(a *TwAffine) {
	r.x = a.x
	r.y = a.y
	r.z = feOne
	r.t = a.x
	r.u = a.y
}

// SetExtensible sets r to the affine form of a. Costs one inversion.
func (r *Affine) SetExtensible(a *Extensible) {
	var zi FieldElement
	zi.inv(&a.z)
	r.x.mul(&a.x, &zi)
	r.y.mul(&a.y, &zi)
}

// SetTwExtensible sets r to the affine form of a. Costs one inversion.
func (r *TwAffine) SetTwExtensible(a *TwExtensible) {
	var zi FieldElement
	zi.inv(&a.z)
	r.x.mul(&a.x, &zi)
	r.y.mul(&a.y, &zi)
}

// SetTwAffine sets r to the half-Niels form of a
func (r *TwNiels) SetTwAffine(a *TwAffine) {
	r.a.sub(&a.y, &a.x)
	r.b.add(&a.y, &a.x)
	r.c.mul(&a.x, &a.y)
	r.c.mul(&r.c, &twistDTwo)
}

// SetTwAffine sets r to the projective-Niels form of a
func (r *TwPNiels) SetTwAffine(a *TwAffine) {
	r.n.SetTwAffine(a)
	r.z = feTwo
}

// SetTwExtensible sets r to the projective-Niels form of a
func (r *TwPNiels) SetTwExtensible(a *TwExtensible) {
	r.n.a.sub(&a.y, &a.x)
	r.n.b.add(&a.x, &a.y)
	r.n.c.mul(&a.t, &a.u)
	r.n.c.mul(&r.n.c, &twistDTwo)
	r.z.add(&a.z, &a.z)
}

// SetTwPNiels sets r to the extensible form of a.
// With b - a = 2X and b + a = 2Y the result is (4XZ : 4YZ : 4Z^2).
func (r *TwExtensible) SetTwPNiels(a *TwPNiels) {
	r.t.sub(&a.n.b, &a.n.a)
	r.u.add(&a.n.a, &a.n.b)
	r.x.mul(&a.z, &r.t)
	r.y.mul(&a.z, &r.u)
	r.z.sqr(&a.z)
}

// SetTwNiels sets r to the extensible form of a.
// With b - a = 2x and b + a = 2y the result is (4x : 4y : 4).
func (r *TwExtensible) SetTwNiels(a *TwNiels) {
	r.t.sub(&a.b, &a.a)
	r.u.add(&a.a, &a.b)
	r.x.add(&r.t, &r.t)
	r.y.add(&r.u, &r.u)
	r.z.add(&feTwo, &feTwo)
}

// CondNegate replaces n by its negation if m is true. Negation of a Niels
// point swaps a and b and negates c.
func (n *TwNiels) CondNegate(m Mask) {
	cswap(&n.a, &n.b, m)
	n.c.condNegate(m)
}

// CondNegate replaces n by its negation if m is true
func (n *TwPNiels) CondNegate(m Mask) {
	n.n.CondNegate(m)
}

// cmov sets r = a if m is true
func (r *TwExtensible) cmov(a *TwExtensible, m Mask) {
	r.x.cmov(&a.x, m)
	r.y.cmov(&a.y, m)
	r.z.cmov(&a.z, m)
	r.t.cmov(&a.t, m)
	r.u.cmov(&a.u, m)
}

// cmov sets r = a if m is true
func (r *TwPNiels) cmov(a *TwPNiels, m Mask) {
	r.n.a.cmov(&a.n.a, m)
	r.n.b.cmov(&a.n.b, m)
	r.n.c.cmov(&a.n.c, m)
	r.z.cmov(&a.z, m)
}
