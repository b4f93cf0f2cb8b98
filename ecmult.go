package goldilocks

import "crypto/subtle"

// Fixed-window scalar multiplication on E'.
const (
	// Window size for the precomputed table (4 bits = 16 entries)
	EcmultWindowSize = 4
	EcmultTableSize  = 1 << EcmultWindowSize
)

// ecmultTable holds 0*P, 1*P, ..., 15*P in projective-Niels form
type ecmultTable [EcmultTableSize]TwPNiels

// build fills the table with the multiples of p
func (tab *ecmultTable) build(p *TwExtensible) {
	var acc TwExtensible
	acc.SetIdentity()
	var pn TwPNiels
	pn.SetTwExtensible(p)
	for i := range tab {
		tab[i].SetTwExtensible(&acc)
		acc.AddTwPNiels(&pn)
	}
}

// lookup sets r = tab[idx], touching every entry
func (tab *ecmultTable) lookup(r *TwPNiels, idx uint) {
	*r = tab[0]
	for i := 1; i < EcmultTableSize; i++ {
		m := maskFromBit(uint64(subtle.ConstantTimeEq(int32(i), int32(idx))))
		r.cmov(&tab[i], m)
	}
}

// ScalarMul sets r = k*a on E', with k given as little-endian bytes. The
// sequence of field operations depends only on len(k).
//
// The addition formulas are not complete on E': sums landing on the
// 4-torsion points at infinity are exceptional. Multiples of an even point
// never land there, so a should be even (TwistAndDouble and TwistEven
// outputs are) unless k is known to be smaller than q.
func (r *TwExtensible) ScalarMul(a *TwExtensible, k []byte) {
	var tab ecmultTable
	tab.build(a)

	var acc TwExtensible
	acc.SetIdentity()
	var pn TwPNiels
	for i := 2*len(k) - 1; i >= 0; i-- {
		for j := 0; j < EcmultWindowSize; j++ {
			acc.Double()
		}
		nibble := uint(k[i>>1]>>(4*uint(i&1))) & (EcmultTableSize - 1)
		tab.lookup(&pn, nibble)
		acc.AddTwPNiels(&pn)
	}
	*r = acc
}
