package engine

import (
	"math/rand/v2"
	"slices"
)

const maxHistory = 8

// Randomizer draws pieces while avoiding recent repeats. It rerolls a draw
// found in its history up to a fixed number of tries, then records the
// result. The state, including the PCG source, is a plain value.
type Randomizer struct {
	history [maxHistory]PieceType
	size    int
	cursor  int
	tries   int
	src     rand.PCG
}

// NewRandomizer returns a randomizer seeded with seed.
func NewRandomizer(gen GeneratorSpec, seed uint64) Randomizer {
	r := Randomizer{src: *rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
	r.Restart(gen)
	return r
}

// Restart reloads the history and tries from gen, keeping the random source.
func (r *Randomizer) Restart(gen GeneratorSpec) {
	r.history = [maxHistory]PieceType{}
	r.size = copy(r.history[:], gen.History)
	r.cursor = 0
	r.tries = gen.Tries
}

// History returns the history contents in storage order.
func (r *Randomizer) History() []PieceType {
	return slices.Clone(r.history[:r.size])
}

func (r *Randomizer) inHistory(t PieceType) bool {
	return slices.Contains(r.history[:r.size], t)
}

// Next draws the next piece. At level 0 only I, T, L and J are drawn.
func (r *Randomizer) Next(level int) PieceType {
	set := AllPieces
	if level == 0 {
		set = OpeningPieces
	}
	rng := rand.New(&r.src)

	var t PieceType
	for i := 0; i < r.tries; i++ {
		t = set[rng.IntN(len(set))]
		if !r.inHistory(t) {
			break
		}
	}
	if r.size > 0 {
		r.history[r.cursor] = t
		r.cursor = (r.cursor + 1) % r.size
	}
	return t
}
