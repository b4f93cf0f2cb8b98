package goldilocks

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointIdentity(t *testing.T) {
	var e Extensible
	e.SetIdentity()
	requireMask(t, true, e.Validate(), "identity valid")

	var w TwExtensible
	w.SetIdentity()
	requireMask(t, true, w.Validate(), "twisted identity valid")

	var a Affine
	a.SetIdentity()
	requireMask(t, true, a.Validate(), "affine identity valid")

	var ta TwAffine
	ta.SetIdentity()
	requireMask(t, true, ta.Validate(), "twisted affine identity valid")
}

func TestPointConversions(t *testing.T) {
	rng := newRand()
	for i := 0; i < 8; i++ {
		p := twisted.random(rng)
		a := toTwAffine(p)

		var e TwExtensible
		e.SetTwAffine(&a)
		requireMask(t, true, e.Validate(), "affine to extensible")

		var pn TwPNiels
		pn.SetTwExtensible(&e)
		var back TwExtensible
		back.SetTwPNiels(&pn)
		requireMask(t, true, back.Validate(), "pniels to extensible valid")
		requireMask(t, true, back.Equal(&e), "extensible -> pniels -> extensible")

		pn.SetTwAffine(&a)
		back.SetTwPNiels(&pn)
		requireMask(t, true, back.Equal(&e), "affine -> pniels -> extensible")

		var n TwNiels
		n.SetTwAffine(&a)
		back.SetTwNiels(&n)
		requireMask(t, true, back.Validate(), "niels to extensible valid")
		requireMask(t, true, back.Equal(&e), "affine -> niels -> extensible")

		var ta TwAffine
		ta.SetTwExtensible(&back)
		requireMask(t, true, ta.Equal(&a), "extensible -> affine")

		q := edwards.random(rng)
		ea := toAffine(q)
		ee := toExtensible(rng, q)
		var ba Affine
		ba.SetExtensible(&ee)
		requireMask(t, true, ba.Equal(&ea), "base extensible -> affine")
		ee.SetAffine(&ea)
		requireMask(t, true, ee.Validate(), "base affine -> extensible")
	}
}

func TestAddTwNiels(t *testing.T) {
	rng := newRand()
	p := twisted.random(rng)
	q := twisted.random(rng)
	id := bigPoint{big.NewInt(0), big.NewInt(1)}

	tests := []struct {
		name string
		p, q bigPoint
	}{
		{"distinct", p, q},
		{"equal", p, p},
		{"opposite", p, p.neg()},
		{"identity accumulator", id, q},
		{"identity addend", p, id},
		{"both identity", id, id},
		{"even", twisted.randomEven(rng), twisted.randomEven(rng)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want := twisted.add(tc.p, tc.q)
			qa := toTwAffine(tc.q)

			acc := toTwExtensible(rng, tc.p)
			var n TwNiels
			n.SetTwAffine(&qa)
			acc.AddTwNiels(&n)
			requireMask(t, true, acc.Validate(), "niels sum valid")
			assert.True(t, fromTwExtensible(&acc).equal(want), "niels sum")

			acc = toTwExtensible(rng, tc.p)
			qe := toTwExtensible(rng, tc.q)
			var pn TwPNiels
			pn.SetTwExtensible(&qe)
			acc.AddTwPNiels(&pn)
			requireMask(t, true, acc.Validate(), "pniels sum valid")
			assert.True(t, fromTwExtensible(&acc).equal(want), "pniels sum")

			diff := twisted.add(tc.p, tc.q.neg())
			acc = toTwExtensible(rng, tc.p)
			acc.SubTwNiels(&n)
			assert.True(t, fromTwExtensible(&acc).equal(diff), "niels difference")

			acc = toTwExtensible(rng, tc.p)
			acc.SubTwPNiels(&pn)
			assert.True(t, fromTwExtensible(&acc).equal(diff), "pniels difference")
		})
	}
}

func TestCondNegateNiels(t *testing.T) {
	rng := newRand()
	p := twisted.random(rng)
	pa := toTwAffine(p)
	na := toTwAffine(p.neg())

	var n, want TwNiels
	n.SetTwAffine(&pa)
	want.SetTwAffine(&na)

	m := n
	m.CondNegate(MaskFalse)
	assert.Equal(t, n, m)
	m.CondNegate(MaskTrue)
	requireMask(t, true, m.a.equal(&want.a)&m.b.equal(&want.b)&m.c.equal(&want.c), "negated niels")

	var pn TwPNiels
	pn.SetTwAffine(&pa)
	pn.CondNegate(MaskTrue)
	var e TwExtensible
	e.SetTwPNiels(&pn)
	assert.True(t, fromTwExtensible(&e).equal(p.neg()))
}

func TestDouble(t *testing.T) {
	rng := newRand()
	for i := 0; i < 8; i++ {
		p := twisted.random(rng)
		w := toTwExtensible(rng, p)
		w.t = feZero // not read
		w.Double()
		requireMask(t, true, w.Validate(), "twisted double valid")
		require.True(t, fromTwExtensible(&w).equal(twisted.add(p, p)))

		// doubling agrees with self-addition
		var n TwNiels
		pa := toTwAffine(p)
		n.SetTwAffine(&pa)
		s := toTwExtensible(rng, p)
		s.AddTwNiels(&n)
		requireMask(t, true, s.Equal(&w), "double = self-addition")

		q := edwards.random(rng)
		e := toExtensible(rng, q)
		e.u = feZero
		e.Double()
		requireMask(t, true, e.Validate(), "base double valid")
		require.True(t, fromExtensible(&e).equal(edwards.add(q, q)))
	}

	var e Extensible
	e.SetIdentity()
	e.Double()
	var id Extensible
	id.SetIdentity()
	requireMask(t, true, e.Equal(&id), "2*identity")
}

func TestValidateRejects(t *testing.T) {
	rng := newRand()
	p := edwards.random(rng)
	e := toExtensible(rng, p)
	requireMask(t, true, e.Validate(), "valid point")

	bad := e
	bad.y.add(&bad.y, &feOne)
	requireMask(t, false, bad.Validate(), "off curve")

	bad = e
	bad.t.add(&bad.t, &feOne)
	requireMask(t, false, bad.Validate(), "broken extension")

	bad = e
	bad.z = feZero
	bad.x = feZero
	bad.y = feZero
	bad.t = feZero
	requireMask(t, false, bad.Validate(), "zero Z")

	a := toAffine(p)
	a.x.add(&a.x, &feOne)
	requireMask(t, false, a.Validate(), "affine off curve")

	// a point of E is generally not on E'
	w := TwExtensible(e)
	requireMask(t, false, w.Validate(), "base point on twist")
}
