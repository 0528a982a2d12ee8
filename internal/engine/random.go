package engine

import (
	"math/rand/v2"
	"slot_machine/internal/model"
)

// Random Источник случайных чисел для барабанов и поля.
// *rand.Rand из math/rand/v2 подходит без обертки.
type Random interface {
	IntN(n int) int
	Float64() float64
}

// NewRandom Детерминированный источник для заданного сида
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func randomKind(rng Random) model.Kind {
	return model.Kind(rng.IntN(model.KindCount))
}

func randomKinds(rng Random, n int) []model.Kind {
	out := make([]model.Kind, n)
	for i := range out {
		out[i] = randomKind(rng)
	}
	return out
}
