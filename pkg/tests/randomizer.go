package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Digits  func(n int) string
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Digits: func(n int) string {
			buf := make([]byte, n)
			for i := range buf {
				buf[i] = byte('0' + random.Intn(10))
			}
			return string(buf)
		},
	}
}
