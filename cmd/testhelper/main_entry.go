//go:build !testcoverage

package main

import "os"

func main() {
	cfg := DefaultConfig()
	os.Exit(exitCode(run(os.Args, cfg), cfg.Stderr))
}
