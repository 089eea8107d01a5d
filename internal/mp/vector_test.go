package mp

import (
	"math/big"
	"testing"
)

func TestAddSub(t *testing.T) {
	r := testRand(3)
	for _, sizes := range [][2]int{{1, 1}, {3, 1}, {8, 8}, {9, 3}, {17, 16}, {33, 32}} {
		x, y := randWords(r, sizes[0]), randWords(r, sizes[1])
		bx, by := toBig(x), toBig(y)

		z := make([]Word, sizes[0]+1)
		z[sizes[0]] = Add3(z, x, y)
		if toBig(z).Cmp(new(big.Int).Add(bx, by)) != 0 {
			t.Errorf("Add3 %v: got %x, want %x", sizes, toBig(z), new(big.Int).Add(bx, by))
		}

		acc := append(append([]Word(nil), x...), 0)
		if c := Add2(acc, y); c != 0 {
			t.Errorf("Add2 %v carried out of padded top word", sizes)
		}
		if toBig(acc).Cmp(toBig(z)) != 0 {
			t.Errorf("Add2 %v disagrees with Add3", sizes)
		}

		if b := Sub2(acc, y); b != 0 {
			t.Errorf("Sub2 %v borrowed", sizes)
		}
		if toBig(acc).Cmp(bx) != 0 {
			t.Errorf("Sub2 %v: got %x, want %x", sizes, toBig(acc), bx)
		}

		diff := make([]Word, len(z))
		if b := Sub3(diff, z, y); b != 0 {
			t.Errorf("Sub3 %v borrowed", sizes)
		}
		if toBig(diff).Cmp(bx) != 0 {
			t.Errorf("Sub3 %v: got %x, want %x", sizes, toBig(diff), bx)
		}
	}
}

func TestSub2Rev(t *testing.T) {
	x := []Word{1, 0, 0, 0, 0, 0, 0, 0, 0}
	y := []Word{5, 1, 0, 0, 0, 0, 0, 0, 7}
	if b := Sub2Rev(x, y); b != 0 {
		t.Fatalf("Sub2Rev borrowed")
	}
	want := new(big.Int).Sub(toBig(y), big.NewInt(1))
	if toBig(x).Cmp(want) != 0 {
		t.Errorf("Sub2Rev = %x, want %x", toBig(x), want)
	}
}

func TestShifts(t *testing.T) {
	r := testRand(4)
	tests := []struct {
		name      string
		size      int
		wordShift int
		bitShift  uint
	}{
		{"bits only", 4, 0, 13},
		{"words only", 5, 2, 0},
		{"words and bits", 7, 3, 63},
		{"one bit", 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := randWords(r, tt.size)
			shift := uint(tt.wordShift)*WordBits + tt.bitShift
			wantL := new(big.Int).Lsh(toBig(x), shift)
			wantR := new(big.Int).Rsh(toBig(x), shift)

			y := make([]Word, tt.size+tt.wordShift+1)
			Shl2(y, x, tt.wordShift, tt.bitShift)
			if toBig(y).Cmp(wantL) != 0 {
				t.Errorf("Shl2 = %x, want %x", toBig(y), wantL)
			}

			inPlace := make([]Word, tt.size+tt.wordShift+1)
			copy(inPlace, x)
			Shl1(inPlace, tt.size, tt.wordShift, tt.bitShift)
			if toBig(inPlace).Cmp(wantL) != 0 {
				t.Errorf("Shl1 = %x, want %x", toBig(inPlace), wantL)
			}

			down := make([]Word, tt.size)
			Shr2(down, x, tt.wordShift, tt.bitShift)
			if toBig(down).Cmp(wantR) != 0 {
				t.Errorf("Shr2 = %x, want %x", toBig(down), wantR)
			}

			Shr1(inPlace, len(inPlace), tt.wordShift, tt.bitShift)
			if toBig(inPlace).Cmp(toBig(x)) != 0 {
				t.Errorf("Shr1(Shl1(x)) = %x, want %x", toBig(inPlace), toBig(x))
			}
		})
	}
}

func TestShr1_ShiftPastEnd(t *testing.T) {
	x := []Word{1, 2, 3}
	Shr1(x, 3, 4, 5)
	if SigWords(x) != 0 {
		t.Errorf("Shr1 past the end left %v", x)
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		name string
		x, y []Word
		want int
	}{
		{"equal", []Word{1, 2}, []Word{1, 2}, 0},
		{"padded equal", []Word{1, 2, 0, 0}, []Word{1, 2}, 0},
		{"high word wins", []Word{0, 3}, []Word{WordMax, 2}, 1},
		{"longer nonzero", []Word{0, 0, 1}, []Word{WordMax, WordMax}, 1},
		{"shorter smaller", []Word{5}, []Word{5, 1}, -1},
		{"empty", nil, []Word{0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cmp(tt.x, tt.y); got != tt.want {
				t.Errorf("Cmp(%v, %v) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLinMul(t *testing.T) {
	r := testRand(5)
	for _, n := range []int{1, 7, 8, 9, 24} {
		x := randWords(r, n)
		y := r.Uint64()
		want := new(big.Int).Mul(toBig(x), new(big.Int).SetUint64(y))

		z := make([]Word, n+1)
		LinMul3(z, x, y)
		if toBig(z).Cmp(want) != 0 {
			t.Errorf("LinMul3 n=%d = %x, want %x", n, toBig(z), want)
		}

		in := append([]Word(nil), x...)
		carry := LinMul2(in, y)
		if toBig(append(in, carry)).Cmp(want) != 0 {
			t.Errorf("LinMul2 n=%d mismatch", n)
		}
	}
}

func TestDivOpModOp(t *testing.T) {
	r := testRand(6)
	for i := 0; i < 500; i++ {
		d := r.Uint64() | 1
		n1 := r.Uint64() % d
		n0 := r.Uint64()
		num := toBig([]Word{n0, n1})
		q, m := new(big.Int).QuoRem(num, new(big.Int).SetUint64(d), new(big.Int))

		if got := DivOp(n1, n0, d); got != q.Uint64() {
			t.Fatalf("DivOp(%x, %x, %x) = %x, want %x", n1, n0, d, got, q)
		}
		if got := ModOp(n1, n0, d); got != m.Uint64() {
			t.Fatalf("ModOp(%x, %x, %x) = %x, want %x", n1, n0, d, got, m)
		}
	}
}

func TestDivOp_ZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DivOp by zero did not panic")
		}
	}()
	DivOp(1, 1, 0)
}
