package goldilocks

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarMul(t *testing.T) {
	rng := newRand()
	scalars := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(15),
		big.NewInt(16),
		big.NewInt(17),
		new(big.Int).Sub(bigQ, bigOne),
		bigQ,
		randomScalar(rng),
		randomScalar(rng),
	}
	for i := 0; i < 2; i++ {
		q := twisted.randomEven(rng)
		w := toTwExtensible(rng, q)
		for _, k := range scalars {
			t.Run(k.String(), func(t *testing.T) {
				var r TwExtensible
				r.ScalarMul(&w, scalarBytes(k))
				requireMask(t, true, r.Validate(), "valid")
				require.True(t, fromTwExtensible(&r).equal(twisted.mul(k, q)))
			})
		}
	}
}

func TestScalarMulSmallScalarOddPoint(t *testing.T) {
	rng := newRand()
	q := twisted.random(rng)
	w := toTwExtensible(rng, q)
	k := big.NewInt(1000003)

	var r TwExtensible
	r.ScalarMul(&w, scalarBytes(k)[:4])
	require.True(t, fromTwExtensible(&r).equal(twisted.mul(k, q)))
}

func TestEcmultTableLookup(t *testing.T) {
	rng := newRand()
	w := toTwExtensible(rng, twisted.randomEven(rng))
	var tab ecmultTable
	tab.build(&w)

	for i := 0; i < EcmultTableSize; i++ {
		var pn TwPNiels
		tab.lookup(&pn, uint(i))
		var got TwExtensible
		got.SetTwPNiels(&pn)
		require.True(t, fromTwExtensible(&got).equal(twisted.mul(big.NewInt(int64(i)), fromTwExtensible(&w))), "entry %d", i)
	}
}
