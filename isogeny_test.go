package goldilocks

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOnlyTwist maps any point of E to a point of E' whose double is
// phi(a). Odd inputs are first moved by (1, 0); the 4-torsion component is
// not tracked. Variable time.
func testOnlyTwist(b *TwExtensible, a *Extensible) {
	p := *a
	if !p.IsEven().Bool() {
		// (X, Y, Z, T*U) + (1, 0) = (Y, -X, Z, -T*U)
		p.x, p.y = a.y, a.x
		p.y.negate(&p.y)
		p.u.negate(&p.u)
	}
	b.TwistEven(&p)
}

func TestTwistAndDouble(t *testing.T) {
	rng := newRand()
	for i := 0; i < 8; i++ {
		p := edwards.random(rng)
		e := toExtensible(rng, p)

		var w TwExtensible
		w.TwistAndDouble(&e)
		requireMask(t, true, w.Validate(), "phi(P) valid")
		require.True(t, fromTwExtensible(&w).equal(phi(p)), "phi(P)")

		var back Extensible
		back.UntwistAndDouble(&w)
		requireMask(t, true, back.Validate(), "phi'(phi(P)) valid")
		require.True(t, fromExtensible(&back).equal(edwards.mul(big.NewInt(4), p)), "phi' o phi = [4]")

		q := twisted.random(rng)
		tw := toTwExtensible(rng, q)
		var u Extensible
		u.UntwistAndDouble(&tw)
		require.True(t, fromExtensible(&u).equal(phiDual(q)), "phi'(Q)")
		var again TwExtensible
		again.TwistAndDouble(&u)
		require.True(t, fromTwExtensible(&again).equal(twisted.mul(big.NewInt(4), q)), "phi o phi' = [4]")
	}
}

func TestTwistAndDoubleKillsTorsion(t *testing.T) {
	rng := newRand()
	p := edwards.random(rng)
	torsion := []bigPoint{
		{big.NewInt(0), bigMinusOne},
		{big.NewInt(1), big.NewInt(0)},
		{bigMinusOne, big.NewInt(0)},
	}
	e := toExtensible(rng, p)
	var want TwExtensible
	want.TwistAndDouble(&e)
	for _, tp := range torsion {
		q := toExtensible(rng, edwards.add(p, tp))
		var w TwExtensible
		w.TwistAndDouble(&q)
		requireMask(t, true, w.Equal(&want), "phi(P + T) = phi(P)")
	}
}

func TestUntwistAndDoubleAndSerialize(t *testing.T) {
	rng := newRand()
	for i := 0; i < 8; i++ {
		w := toTwExtensible(rng, twisted.random(rng))

		var e Extensible
		e.UntwistAndDouble(&w)
		var want, got FieldElement
		DecafSerializeExtensible(&want, &e)
		UntwistAndDoubleAndSerialize(&got, &w)
		requireMask(t, true, got.equal(&want), "fused serialization")
	}
}

func TestIsEven(t *testing.T) {
	rng := newRand()
	for i := 0; i < 8; i++ {
		p := edwards.randomEven(rng)
		e := toExtensible(rng, p)
		requireMask(t, true, e.IsEven(), "2P is even")

		o := toExtensible(rng, edwards.add(p, bigPoint{big.NewInt(1), big.NewInt(0)}))
		requireMask(t, false, o.IsEven(), "2P + (1, 0) is odd")

		h := toExtensible(rng, edwards.add(p, bigPoint{big.NewInt(0), bigMinusOne}))
		requireMask(t, true, h.IsEven(), "2P + (0, -1) is even")

		q := twisted.randomEven(rng)
		w := toTwExtensible(rng, q)
		requireMask(t, true, w.IsEven(), "2Q is even")
		wo := toTwExtensible(rng, tau(q))
		requireMask(t, false, wo.IsEven(), "tau(2Q) is odd")
	}
}

func TestTwistEven(t *testing.T) {
	rng := newRand()

	t.Run("doubles to phi", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			p := edwards.randomEven(rng)
			e := toExtensible(rng, p)

			var w TwExtensible
			w.TwistEven(&e)
			requireMask(t, true, w.Validate(), "twist_even valid")
			w.Double()

			var want TwExtensible
			want.TwistAndDouble(&e)
			requireMask(t, true, w.Equal(&want), "2*twist_even(P) = phi(P)")
		}
	})

	t.Run("root choice", func(t *testing.T) {
		// the same point in two projective scalings gives the same result
		p := edwards.randomEven(rng)
		e1 := toExtensible(rng, p)
		e2 := toExtensible(rng, p)
		var w1, w2 TwExtensible
		w1.TwistEven(&e1)
		w2.TwistEven(&e2)
		requireMask(t, true, w1.Equal(&w2), "scaling invariant")

		// P and P + (0, -1) differ by (0, -1) on the twist at most
		h := toExtensible(rng, edwards.add(p, bigPoint{big.NewInt(0), bigMinusOne}))
		var w3 TwExtensible
		w3.TwistEven(&h)
		a, b := fromTwExtensible(&w1), fromTwExtensible(&w3)
		assert.True(t, a.equal(b) || a.equal(bigPoint{bigNeg(b.x), bigNeg(b.y)}))
	})

	t.Run("special points", func(t *testing.T) {
		var id TwExtensible
		id.SetIdentity()
		points := []bigPoint{
			{big.NewInt(0), big.NewInt(1)},
			{big.NewInt(0), bigMinusOne},
			{big.NewInt(1), big.NewInt(0)},
			{bigMinusOne, big.NewInt(0)},
		}
		for _, p := range points {
			e := toExtensible(rng, p)
			var w TwExtensible
			w.TwistEven(&e)
			requireMask(t, true, w.Validate(), "valid")
			requireMask(t, true, w.Equal(&id), "maps to the identity")
		}
	})

	t.Run("test only twist", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			p := edwards.random(rng)
			e := toExtensible(rng, p)

			var w TwExtensible
			testOnlyTwist(&w, &e)
			w.Double()
			var want TwExtensible
			want.TwistAndDouble(&e)
			requireMask(t, true, w.Equal(&want), "2*test_only_twist(P) = phi(P)")
		}
	})
}
