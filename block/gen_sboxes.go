//go:build ignore

// gen_sboxes writes sboxes_gen.go: bitsliced Serpent S-boxes and their
// inverses, each output bit expressed in algebraic normal form over the
// four input words.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

var sboxes = [8][16]int{
	{3, 8, 15, 1, 10, 6, 5, 11, 14, 13, 4, 2, 7, 0, 9, 12},
	{15, 12, 2, 7, 9, 0, 5, 10, 1, 11, 14, 8, 6, 13, 3, 4},
	{8, 6, 7, 9, 3, 12, 10, 15, 13, 1, 14, 4, 0, 11, 5, 2},
	{0, 15, 11, 8, 12, 9, 6, 3, 13, 1, 2, 4, 10, 7, 5, 14},
	{1, 15, 8, 3, 12, 0, 11, 6, 2, 5, 4, 10, 9, 14, 7, 13},
	{15, 5, 2, 11, 4, 10, 9, 12, 0, 3, 14, 8, 13, 6, 7, 1},
	{7, 2, 12, 5, 8, 4, 6, 11, 14, 9, 1, 15, 13, 3, 10, 0},
	{1, 13, 15, 0, 14, 8, 2, 11, 7, 4, 12, 10, 9, 3, 5, 6},
}

// monomials in emission order; each is a list of input word indices.
var monomials = [][]int{
	{}, {0}, {1}, {2}, {3},
	{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
}

func main() {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen_sboxes.go; DO NOT EDIT.\n\npackage block\n")
	for i, s := range sboxes {
		gen(&buf, fmt.Sprintf("sbox%d", i), fmt.Sprintf("sbox%d applies Serpent S-box %d to four bitsliced words.", i, i), s)
	}
	for i, s := range sboxes {
		var inv [16]int
		for x, y := range s {
			inv[y] = x
		}
		gen(&buf, fmt.Sprintf("sboxInv%d", i), fmt.Sprintf("sboxInv%d applies the inverse of S-box %d.", i, i), inv)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format: %v", err)
	}
	if err := os.WriteFile("sboxes_gen.go", src, 0o644); err != nil {
		log.Fatalf("write: %v", err)
	}
}

func mask(m []int) int {
	v := 0
	for _, i := range m {
		v |= 1 << i
	}
	return v
}

func name(m []int) string {
	if len(m) == 1 {
		return fmt.Sprintf("x%d", m[0])
	}
	var sb strings.Builder
	sb.WriteString("m")
	for _, i := range m {
		fmt.Fprintf(&sb, "%d", i)
	}
	return sb.String()
}

// anf returns the monomials of output bit b via the Moebius transform.
func anf(table [16]int, b int) [][]int {
	var a [16]int
	for x := range a {
		a[x] = table[x] >> b & 1
	}
	for i := 0; i < 4; i++ {
		for x := range a {
			if x>>i&1 == 1 {
				a[x] ^= a[x^1<<i]
			}
		}
	}
	var out [][]int
	for _, m := range monomials {
		if a[mask(m)] == 1 {
			out = append(out, m)
		}
	}
	if a[15] == 1 {
		log.Fatalf("degree-4 term in output bit %d", b)
	}
	return out
}

func gen(buf *bytes.Buffer, fn, doc string, table [16]int) {
	var outs [4][][]int
	need := map[string]bool{}
	for b := range outs {
		outs[b] = anf(table, b)
		for _, m := range outs[b] {
			if len(m) >= 2 {
				need[name(m)] = true
			}
			if len(m) == 3 {
				need[name(m[:2])] = true
			}
		}
	}

	fmt.Fprintf(buf, "\n// %s\n", doc)
	fmt.Fprintf(buf, "func %s[L lane[L]](x0, x1, x2, x3 L) (L, L, L, L) {\n", fn)
	for _, m := range monomials {
		if !need[name(m)] || len(m) < 2 {
			continue
		}
		if len(m) == 2 {
			fmt.Fprintf(buf, "\t%s := x%d.And(x%d)\n", name(m), m[0], m[1])
		} else {
			fmt.Fprintf(buf, "\t%s := %s.And(x%d)\n", name(m), name(m[:2]), m[2])
		}
	}
	for b, o := range outs {
		var terms []string
		constant := false
		for _, m := range o {
			if len(m) == 0 {
				constant = true
				continue
			}
			terms = append(terms, name(m))
		}
		expr := terms[0]
		for _, t := range terms[1:] {
			expr += ".Xor(" + t + ")"
		}
		if constant {
			expr += ".Not()"
		}
		fmt.Fprintf(buf, "\ty%d := %s\n", b, expr)
	}
	buf.WriteString("\treturn y0, y1, y2, y3\n}\n")
}
