package goldilocks

// Curve parameters.
//
// The base curve E is Ed448-Goldilocks, x^2 + y^2 = 1 + d*x^2*y^2 with
// d = -39081. The twisted curve E' is -x^2 + y^2 = 1 + d'*x^2*y^2 with
// d' = d - 1, 4-isogenous to E. Both groups have order 4*q.
const (
	edwardsD      = 39081 // d = -edwardsD
	twistedD      = 39082 // d' = -twistedD
	montgomeryA   = 156326
	montgomeryA24 = 39082 // (A+2)/4 = 1 - d
)

var (
	feZero = fieldInt(0)
	feOne  = fieldInt(1)
	feTwo  = fieldInt(2)
)

var (
	curveD        FieldElement // d
	curveDFour    FieldElement // 4d
	twistD        FieldElement // d'
	twistDTwo     FieldElement // 2d', the Niels c scale
	twistDFour    FieldElement // 4d'
	twistSqrtD    FieldElement // square root of d' that is itself a square
	oneMinusD     FieldElement // 1 - d = -d'
	oneMinusTwoD  FieldElement // 1 - 2d
	sqrtMinusD    FieldElement // non-negative square root of -d
	invSqrtMinusD FieldElement // 1/sqrtMinusD
	twistAMinusD  FieldElement // a - d' on the twist (a = -1), equal to -d

	// ladder constants
	montA         FieldElement // A of the Decaf ladder curve (curve448)
	montTwoA      FieldElement // 2A
	montA24       FieldElement // (A+2)/4 of the Decaf ladder curve
	montPrimeTwoA FieldElement // 2A' of the plain ladder curve, A' = 2(d+1)/(d-1)
)

// BasePoint is the Ed448 base point of RFC 8032. It has order q; its double
// is the generator of the decaf448 group.
var BasePoint Affine

func init() {
	curveD.setNegInt(edwardsD)
	curveDFour.setNegInt(4 * edwardsD)
	twistD.setNegInt(twistedD)
	twistDTwo.setNegInt(2 * twistedD)
	twistDFour.setNegInt(4 * twistedD)
	oneMinusD.setInt(twistedD)
	oneMinusTwoD.setInt(2*edwardsD + 1)
	twistAMinusD.setInt(edwardsD)

	// sqrt(x) = x^((p+1)/4) is the root that is a square
	qrRoot(&twistSqrtD, &twistD)

	var minusD FieldElement
	minusD.setInt(edwardsD)
	qrRoot(&sqrtMinusD, &minusD)
	sqrtMinusD.abs(&sqrtMinusD)
	invSqrtMinusD.inv(&sqrtMinusD)

	montA.setInt(montgomeryA)
	montTwoA.setInt(2 * montgomeryA)
	montA24.setInt(montgomeryA24)

	// A' = 2(d+1)/(d-1)
	var num, den FieldElement
	num.add(&curveD, &feOne)
	num.add(&num, &num)
	den.sub(&curveD, &feOne)
	den.inv(&den)
	montPrimeTwoA.mul(&num, &den)
	montPrimeTwoA.add(&montPrimeTwoA, &montPrimeTwoA)

	bx := []byte{
		0x5e, 0xc0, 0x0c, 0xc7, 0x2b, 0xa8, 0x26, 0x26, 0x8e, 0x93, 0x00, 0x8b, 0xe1, 0x80,
		0x3b, 0x43, 0x11, 0x65, 0xb6, 0x2a, 0xf7, 0x1a, 0xae, 0x12, 0x64, 0xa4, 0xd3, 0xa3,
		0x24, 0xe3, 0x6d, 0xea, 0x67, 0x17, 0x0f, 0x47, 0x70, 0x65, 0x14, 0x9e, 0xda, 0x36,
		0xbf, 0x22, 0xa6, 0x15, 0x1d, 0x22, 0xed, 0x0d, 0xed, 0x6b, 0xc6, 0x70, 0x19, 0x4f,
	}
	by := []byte{
		0x14, 0xfa, 0x30, 0xf2, 0x5b, 0x79, 0x08, 0x98, 0xad, 0xc8, 0xd7, 0x4e, 0x2c, 0x13,
		0xbd, 0xfd, 0xc4, 0x39, 0x7c, 0xe6, 0x1c, 0xff, 0xd3, 0x3a, 0xd7, 0xc2, 0xa0, 0x05,
		0x1e, 0x9c, 0x78, 0x87, 0x40, 0x98, 0xa3, 0x6c, 0x73, 0x73, 0xea, 0x4b, 0x62, 0xc7,
		0xc9, 0x56, 0x37, 0x20, 0x76, 0x88, 0x24, 0xbc, 0xb6, 0x6e, 0x71, 0x46, 0x3f, 0x69,
	}
	BasePoint.x.SetBytes(bx)
	BasePoint.y.SetBytes(by)
}

// qrRoot sets r = a^((p+1)/4), the square root of a square a that is itself
// a square
func qrRoot(r, a *FieldElement) {
	var t FieldElement
	t.isr(a)
	r.mul(&t, a)
}
