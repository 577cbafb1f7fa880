package automaton

import "github.com/pauldmccarthy/lilx/internal/pattern"

// Result describes the winning transition at an input position.
type Result struct {
	// Next is the target state of the transition.
	Next State
	// Consumed is the number of input bytes the driver should skip. It is
	// one less than the raw match length: the final byte matched by a
	// pattern belongs to the next token and is left for the driver.
	Consumed int
	// Pattern is the winning pattern text; handlers inspect it for the
	// self-closing marker.
	Pattern string
}

// Next evaluates every transition leaving state against input at pos and
// returns the winner. Candidates are tried in ascending target-state and
// alternative order; among matches, the greatest raw pattern length wins,
// with ties resolved in favor of the first candidate seen.
func Next(style QuoteStyle, state State, input []byte, pos int) (Result, bool) {
	return nextIn(transitions(style), state, input, pos)
}

func nextIn(t *table, state State, input []byte, pos int) (Result, bool) {
	var best Result
	bestLen := -1
	for target := State(0); target < numStates; target++ {
		for alt := 0; alt < alternatives; alt++ {
			pat := t[state][target][alt]
			if pat == "" {
				continue
			}
			n, ok := pattern.Match(input, pos, pat)
			if !ok {
				continue
			}
			if len(pat) > bestLen {
				bestLen = len(pat)
				best = Result{Next: target, Consumed: n - 1, Pattern: pat}
			}
		}
	}

	if bestLen < 0 {
		return Result{}, false
	}
	return best, true
}
