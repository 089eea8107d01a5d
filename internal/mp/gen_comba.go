//go:build ignore

// gen_comba writes comba_gen.go: straight-line Comba multiply and square
// routines for the fixed operand sizes used by the Karatsuba dispatcher.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
)

var sizes = []int{4, 6, 8, 16}

func main() {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen_comba.go; DO NOT EDIT.\n\npackage mp\n")
	for _, n := range sizes {
		genMul(&buf, n)
	}
	for _, n := range sizes {
		genSqr(&buf, n)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format: %v", err)
	}
	if err := os.WriteFile("comba_gen.go", src, 0o644); err != nil {
		log.Fatalf("write: %v", err)
	}
}

func genMul(buf *bytes.Buffer, n int) {
	fmt.Fprintf(buf, "\n// CombaMul%d sets z[0:%d] = x[0:%d] * y[0:%d].\n", n, 2*n, n, n)
	fmt.Fprintf(buf, "func CombaMul%d(z, x, y []Word) {\n", n)
	fmt.Fprintf(buf, "\t_, _, _ = z[%d], x[%d], y[%d]\n", 2*n-1, n-1, n-1)
	buf.WriteString("\tvar w2, w1, w0 Word\n")
	for k := 0; k <= 2*n-2; k++ {
		buf.WriteString("\n")
		for i := 0; i < n; i++ {
			j := k - i
			if j < 0 || j >= n {
				continue
			}
			fmt.Fprintf(buf, "\tw2, w1, w0 = word3MulAdd(w2, w1, w0, x[%d], y[%d])\n", i, j)
		}
		closeColumn(buf, k, n)
	}
	buf.WriteString("}\n")
}

func genSqr(buf *bytes.Buffer, n int) {
	fmt.Fprintf(buf, "\n// CombaSqr%d sets z[0:%d] = x[0:%d] * x[0:%d].\n", n, 2*n, n, n)
	fmt.Fprintf(buf, "func CombaSqr%d(z, x []Word) {\n", n)
	fmt.Fprintf(buf, "\t_, _ = z[%d], x[%d]\n", 2*n-1, n-1)
	buf.WriteString("\tvar w2, w1, w0 Word\n")
	for k := 0; k <= 2*n-2; k++ {
		buf.WriteString("\n")
		for i := 0; i < n; i++ {
			j := k - i
			if j <= i || j >= n {
				continue
			}
			fmt.Fprintf(buf, "\tw2, w1, w0 = word3MulAdd2(w2, w1, w0, x[%d], x[%d])\n", i, j)
		}
		if k%2 == 0 {
			fmt.Fprintf(buf, "\tw2, w1, w0 = word3MulAdd(w2, w1, w0, x[%d], x[%d])\n", k/2, k/2)
		}
		closeColumn(buf, k, n)
	}
	buf.WriteString("}\n")
}

func closeColumn(buf *bytes.Buffer, k, n int) {
	fmt.Fprintf(buf, "\tz[%d] = w0\n", k)
	if k < 2*n-2 {
		buf.WriteString("\tw0, w1, w2 = w1, w2, 0\n")
		return
	}
	fmt.Fprintf(buf, "\tz[%d] = w1\n", k+1)
}
