package simd

import (
	"math/bits"
	"testing"

	"pgregory.net/rapid"
)

func genVec(t *rapid.T, label string) Vec4x32 {
	var v Vec4x32
	for i := range v {
		v[i] = rapid.Uint32().Draw(t, label)
	}
	return v
}

func TestLaneOps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := genVec(t, "a"), genVec(t, "b")
		n := rapid.IntRange(0, 31).Draw(t, "n")
		w := rapid.Uint32().Draw(t, "w")

		xor, and, or, andNot := a.Xor(b), a.And(b), a.Or(b), a.AndNot(b)
		not, add, xw := a.Not(), a.Add(b), a.XorWord(w)
		rotl, rotr := a.RotL(n), a.RotR(n)
		shl, shr := a.Shl(uint(n)), a.Shr(uint(n))

		for i := 0; i < Lanes; i++ {
			switch {
			case xor[i] != a[i]^b[i]:
				t.Fatalf("Xor lane %d", i)
			case and[i] != a[i]&b[i]:
				t.Fatalf("And lane %d", i)
			case or[i] != a[i]|b[i]:
				t.Fatalf("Or lane %d", i)
			case andNot[i] != a[i]&^b[i]:
				t.Fatalf("AndNot lane %d", i)
			case not[i] != ^a[i]:
				t.Fatalf("Not lane %d", i)
			case add[i] != a[i]+b[i]:
				t.Fatalf("Add lane %d", i)
			case xw[i] != a[i]^w:
				t.Fatalf("XorWord lane %d", i)
			case rotl[i] != bits.RotateLeft32(a[i], n):
				t.Fatalf("RotL lane %d", i)
			case rotr[i] != bits.RotateLeft32(a[i], -n):
				t.Fatalf("RotR lane %d", i)
			case shl[i] != a[i]<<uint(n):
				t.Fatalf("Shl lane %d", i)
			case shr[i] != a[i]>>uint(n):
				t.Fatalf("Shr lane %d", i)
			}
		}
	})
}

func TestLoadStoreLE(t *testing.T) {
	in := []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
		0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	}
	v := LoadLE(in)
	want := Vec4x32{0x04030201, 0x08070605, 0x0c0b0a09, 0x100f0e0d}
	if v != want {
		t.Fatalf("LoadLE() = %08x, want %08x", v, want)
	}

	out := make([]byte, 16)
	v.StoreLE(out)
	if string(out) != string(in) {
		t.Errorf("StoreLE() = %x, want %x", out, in)
	}
}

func TestTranspose(t *testing.T) {
	a := Vec4x32{0, 1, 2, 3}
	b := Vec4x32{10, 11, 12, 13}
	c := Vec4x32{20, 21, 22, 23}
	d := Vec4x32{30, 31, 32, 33}

	w, x, y, z := Transpose(a, b, c, d)
	if w != (Vec4x32{0, 10, 20, 30}) || z != (Vec4x32{3, 13, 23, 33}) {
		t.Fatalf("Transpose() columns wrong: %v %v", w, z)
	}

	ra, rb, rc, rd := Transpose(w, x, y, z)
	if ra != a || rb != b || rc != c || rd != d {
		t.Error("Transpose is not an involution")
	}
}

func TestSplat(t *testing.T) {
	if Splat(7) != (Vec4x32{7, 7, 7, 7}) {
		t.Error("Splat(7) did not fill every lane")
	}
}
