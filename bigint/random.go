package bigint

import (
	"fmt"
	"io"

	"github.com/vaultsandbox/cryptocore/internal/coreerr"
)

// Random returns a uniformly random non-negative Int of exactly bits bits:
// the top bit is always set. Random(rng, 0) is 0.
func Random(rng io.Reader, bits int) (*Int, error) {
	if bits < 0 {
		return nil, coreerr.Argument("bigint.Random", "negative bit length %d", bits)
	}
	if bits == 0 {
		return &Int{}, nil
	}

	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, fmt.Errorf("bigint.Random: read entropy: %w", err)
	}
	if extra := bits % 8; extra != 0 {
		buf[0] &= 0xff >> (8 - extra)
		buf[0] |= 0x80 >> (8 - extra)
	} else {
		buf[0] |= 0x80
	}
	z := decodeBinary(buf)
	clear(buf)
	return z, nil
}

// RandomInteger returns a random Int in [lo, hi). It draws two more bits
// than the range needs before reducing, which keeps the modulo bias small
// without removing it.
func RandomInteger(rng io.Reader, lo, hi *Int) (*Int, error) {
	span := hi.Sub(lo)
	if span.Sign() <= 0 {
		return nil, coreerr.Argument("bigint.RandomInteger", "empty range [%s, %s)", lo, hi)
	}
	r, err := Random(rng, span.BitLen()+2)
	if err != nil {
		return nil, err
	}
	off, err := r.Mod(span)
	if err != nil {
		return nil, err
	}
	return lo.Add(off), nil
}
