package stbase64

import (
	"testing"
	"time"

	"golang.org/x/exp/rand"
)

func TestConstantTimeByteEq(t *testing.T) {
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			x := byte(i)
			y := byte(j)
			if (ConstantTimeByteEq(x, y) == 1) != (x == y) {
				t.Fatalf("(%d, %d): expected %t", x, y, x == y)
			}
			if (ConstantTimeByteNeq(x, y) == 1) != (x != y) {
				t.Fatalf("(%d, %d): expected %t", x, y, x != y)
			}
		}
	}
}

func TestWipe(t *testing.T) {
	d := 2 * time.Second
	if testing.Short() {
		d = 100 * time.Millisecond
	}
	tm := time.NewTimer(d)

	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %#x", seed)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; ; i++ {
		select {
		case <-tm.C:
			t.Logf("iter: %d", i)
			return
		default:
		}

		x := make([]byte, rng.Intn(256))
		rng.Read(x)
		Wipe(x)
		for j, c := range x {
			if c != 0 {
				t.Fatalf("#%d: x[%d] = %#02x after Wipe", i, j, c)
			}
		}
	}
}
