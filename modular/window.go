package modular

// Usage hints describe how an exponentiator will be used so the window size
// can trade table cost against multiplications.
type Usage uint

// NoHints leaves every choice to the exponent size.
const NoHints Usage = 0

const (
	BaseIsFixed Usage = 1 << iota
	BaseIsSmall
	BaseIsLarge
	ExpIsFixed
	ExpIsSmall
	ExpIsLarge
)

// MaxWindowBits bounds WithWindowBits; larger windows need tables too big
// to pay off.
const MaxWindowBits = 16

var windowSizes = []struct {
	expBits int
	extra   int
}{
	{1434, 7},
	{539, 6},
	{197, 4},
	{70, 3},
	{25, 2},
}

// WindowBits returns the window width for an exponent of expBits bits. The
// result is at least 1. baseBits is accepted for symmetry with the hints but
// does not currently change the choice.
func WindowBits(expBits, baseBits int, hints Usage) int {
	_ = baseBits

	window := 1
	if expBits > 0 {
		for _, ws := range windowSizes {
			if expBits >= ws.expBits {
				window += ws.extra
				break
			}
		}
	}
	if hints&BaseIsFixed != 0 {
		window += 2
	}
	if hints&ExpIsLarge != 0 {
		window++
	}
	return window
}
