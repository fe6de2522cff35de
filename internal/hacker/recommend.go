package hacker

import (
	"cmp"
	"slices"
)

// Ranking pairs a candidate with its filtration power.
type Ranking struct {
	Password string
	Power    int
}

// FiltrationPower scores guess against the live pool: for every candidate t
// taken as the true password, count the candidates that would survive the
// feedback Commonality(t, guess), and sum those counts. The sum is the
// expected surviving pool size times the pool size, so scores compare
// directly. Lower is better.
//
// Grouping candidates by their score against guess gives the same sum as
// Σ n_k² over group sizes n_k, which is how it is computed here.
// Cost is O(n·L) for n candidates of length L.
func (h *Hacker) FiltrationPower(guess string) int {
	return filtrationPower(h.passwords, guess)
}

func filtrationPower(passwords []string, guess string) int {
	groups := make(map[int]int)
	for _, pw := range passwords {
		groups[Commonality(pw, guess)]++
	}
	power := 0
	for _, n := range groups {
		power += n * n
	}
	return power
}

// Recommend returns the candidate whose guess is expected to leave the fewest
// survivors. Ties go to the candidate that comes first in pool order.
//
// Every candidate is scored against every other, so the cost is O(n²·L).
// Pools beyond a few hundred candidates get noticeably slow.
func (h *Hacker) Recommend() (string, error) {
	if len(h.passwords) == 0 {
		return "", &Error{Kind: KindEmptyPool}
	}
	best, bestPower := h.passwords[0], filtrationPower(h.passwords, h.passwords[0])
	for _, pw := range h.passwords[1:] {
		if p := filtrationPower(h.passwords, pw); p < bestPower {
			best, bestPower = pw, p
		}
	}
	return best, nil
}

// Rankings scores every live candidate, best first. Equal scores keep pool
// order, so the first entry is always what Recommend returns.
func (h *Hacker) Rankings() []Ranking {
	out := make([]Ranking, 0, len(h.passwords))
	for _, pw := range h.passwords {
		out = append(out, Ranking{Password: pw, Power: filtrationPower(h.passwords, pw)})
	}
	slices.SortStableFunc(out, func(a, b Ranking) int { return cmp.Compare(a.Power, b.Power) })
	return out
}
