package transforms

// JuliaN is the map z -> z^N + C for a positive integer N.
type JuliaN struct {
	N uint32
	C complex128
}

func (j JuliaN) Next(z complex128) complex128 {
	return PowU(z, j.N) + j.C
}

// PowU raises z to the integer power n by repeated squaring.
// PowU(z, 0) is 1.
func PowU(z complex128, n uint32) complex128 {
	if n == 0 {
		return 1
	}

	for n&1 == 0 {
		z = Mul(z, z)
		n >>= 1
	}

	acc := z
	for n > 1 {
		n >>= 1
		z = Mul(z, z)
		if n&1 == 1 {
			acc = Mul(acc, z)
		}
	}

	return acc
}

// Mul multiplies a and b, rounding every product so no platform fuses the
// operations. Escape times then do not depend on the architecture.
func Mul(a, b complex128) complex128 {
	ar, ai := real(a), imag(a)
	br, bi := real(b), imag(b)

	return complex(float64(ar*br)-float64(ai*bi), float64(ar*bi)+float64(ai*br))
}

var _ Transform = JuliaN{}
