package bigint

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// euclid is the math/big reference: math/big's DivMod is already Euclidean.
func euclid(x, y *big.Int) (*big.Int, *big.Int) {
	return new(big.Int).DivMod(x, y, new(big.Int))
}

func TestDivMod(t *testing.T) {
	tests := []struct {
		name         string
		x, y         string
		wantQ, wantR string
	}{
		{"exact", "100", "10", "10", "0"},
		{"positive", "17", "5", "3", "2"},
		{"negative dividend", "-17", "5", "-4", "3"},
		{"negative divisor", "17", "-5", "-3", "2"},
		{"both negative", "-17", "-5", "4", "3"},
		{"minus one", "-1", "5", "-1", "4"},
		{"small dividend", "3", "340282366920938463463374607431768211457", "0", "3"},
		{"two word divisor", "0x1000000000000000000000000000000000000000000000000", "0x10000000000000001", "0xFFFFFFFFFFFFFFFF0000000000000000", "18446744073709551616"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, r, err := MustParse(tt.x).DivMod(MustParse(tt.y))
			require.NoError(t, err)
			assert.Equal(t, MustParse(tt.wantQ).String(), q.String(), "quotient")
			assert.Equal(t, MustParse(tt.wantR).String(), r.String(), "remainder")

			bx, _ := new(big.Int).SetString(tt.x, 0)
			by, _ := new(big.Int).SetString(tt.y, 0)
			wq, wr := euclid(bx, by)
			assert.Equal(t, wq.String(), q.String(), "quotient vs math/big")
			assert.Equal(t, wr.String(), r.String(), "remainder vs math/big")
		})
	}
}

func TestDivMod_ByZero(t *testing.T) {
	_, _, err := NewInt(7).DivMod(new(Int))
	if !errors.Is(err, ErrDivideByZero) {
		t.Errorf("DivMod() error = %v, want ErrDivideByZero", err)
	}
	if _, err := NewInt(7).Mod(NewInt(0)); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("Mod() error = %v, want ErrDivideByZero", err)
	}
	if _, err := NewInt(7).ModWord(0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("ModWord() error = %v, want ErrDivideByZero", err)
	}
}

func TestDivModProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := genInt(24).Draw(rt, "x")
		y := genInt(12).Draw(rt, "y")
		if y.IsZero() {
			y = NewInt(1)
		}

		q, r, err := x.DivMod(y)
		if err != nil {
			rt.Fatalf("DivMod: %v", err)
		}
		if r.IsNegative() || r.CmpAbs(y) >= 0 {
			rt.Fatalf("remainder %s out of [0, |%s|)", r, y)
		}
		if !q.Mul(y).Add(r).Equal(x) {
			rt.Fatalf("q*y + r != x for x=%s y=%s", x, y)
		}

		wq, wr := euclid(toBig(t, x), toBig(t, y))
		if toBig(t, q).Cmp(wq) != 0 || toBig(t, r).Cmp(wr) != 0 {
			rt.Fatalf("DivMod(%s, %s) = (%s, %s), want (%s, %s)", x, y, q, r, wq, wr)
		}
	})
}

// Divisors whose leading words force the quotient-digit correction loop.
func TestDivMod_CorrectionPaths(t *testing.T) {
	tests := []string{
		"0xFFFFFFFFFFFFFFFF0000000000000000",
		"0x80000000000000000000000000000001",
		"0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF",
		"0x100000000000000000000000000000000",
		"0x1FFFFFFFFFFFFFFFE",
	}
	x := MustParse("0x" + "FFFFFFFFFFFFFFFE" + "0000000000000001" + "FFFFFFFFFFFFFFFF" + "0000000000000000" + "8000000000000000")

	for _, ys := range tests {
		t.Run(ys, func(t *testing.T) {
			y := MustParse(ys)
			q, r, err := x.DivMod(y)
			require.NoError(t, err)
			wq, wr := euclid(toBig(t, x), toBig(t, y))
			assert.Equal(t, wq.String(), q.String())
			assert.Equal(t, wr.String(), r.String())
		})
	}
}

func TestModWord(t *testing.T) {
	tests := []struct {
		x    string
		y    Word
		want Word
	}{
		{"100", 7, 2},
		{"-1", 5, 4},
		{"-10", 5, 0},
		{"0x10000000000000000000000000000000F", 16, 15},
		{"-3", 8, 5},
		{"340282366920938463463374607431768211457", 1000000007, 279632278},
	}

	for _, tt := range tests {
		t.Run(tt.x, func(t *testing.T) {
			got, err := MustParse(tt.x).ModWord(tt.y)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func BenchmarkDivMod(b *testing.B) {
	x := PowerOfTwo(4096).Dec()
	y := PowerOfTwo(2048).Inc()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = x.DivMod(y)
	}
}
