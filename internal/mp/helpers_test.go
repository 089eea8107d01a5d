package mp

import (
	"math/big"
	"math/rand/v2"
)

func toBig(x []Word) *big.Int {
	b := make([]byte, 0, len(x)*WordBytes)
	for i := len(x) - 1; i >= 0; i-- {
		w := x[i]
		for s := WordBits - 8; s >= 0; s -= 8 {
			b = append(b, byte(w>>uint(s)))
		}
	}
	return new(big.Int).SetBytes(b)
}

func fromBig(v *big.Int, n int) []Word {
	out := make([]Word, n)
	b := v.Bytes()
	for i := 0; i < len(b); i++ {
		pos := len(b) - 1 - i
		out[i/WordBytes] |= Word(b[pos]) << (8 * uint(i%WordBytes))
	}
	return out
}

func randWords(r *rand.Rand, n int) []Word {
	x := make([]Word, n)
	for i := range x {
		x[i] = r.Uint64()
	}
	return x
}

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
