package hacker

import (
	"iter"
	"slices"
	"unicode/utf8"
)

// Hacker holds every string that could still be the terminal's password.
//
// The pool never contains duplicates. Its iteration order is fixed: sorted at
// construction, with added passwords appended and removals leaving the
// relative order of the rest untouched. Recommend breaks ties by this order.
type Hacker struct {
	passwords []string
}

// New builds a pool from candidates, dropping duplicates.
// An empty candidate list is rejected with ErrEmptyPool, and a candidate that
// is not valid UTF-8 with ErrInvalidPassword.
func New(candidates []string) (*Hacker, error) {
	if len(candidates) == 0 {
		return nil, &Error{Kind: KindEmptyPool}
	}
	for _, pw := range candidates {
		if !utf8.ValidString(pw) {
			return nil, &Error{Kind: KindInvalidPassword, Candidate: pw}
		}
	}
	passwords := slices.Clone(candidates)
	slices.Sort(passwords)
	passwords = slices.Compact(passwords)
	return &Hacker{passwords: passwords}, nil
}

// Candidates yields the live candidates in pool order. The sequence reads the
// pool when it is ranged over, so it can be reused after later mutations.
// Mutating the pool while ranging over it is not supported.
func (h *Hacker) Candidates() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, pw := range h.passwords {
			if !yield(pw) {
				return
			}
		}
	}
}

// Len returns the number of live candidates.
func (h *Hacker) Len() int {
	return len(h.passwords)
}

// Contains reports whether password is a live candidate.
func (h *Hacker) Contains(password string) bool {
	return slices.Contains(h.passwords, password)
}

// Filter keeps only the candidates that share exactly correctness characters
// with guess. guess must be a live candidate and correctness must lie in
// [0, rune length of guess]. Feedback that no candidate satisfies is rejected
// with ErrImpossible. On any error the pool is left untouched.
func (h *Hacker) Filter(guess string, correctness int) error {
	if !h.Contains(guess) {
		return &Error{Kind: KindUnknownCandidate, Candidate: guess}
	}
	if correctness < 0 || correctness > utf8.RuneCountInString(guess) {
		return &Error{Kind: KindInvalidCorrectness, Candidate: guess, Correctness: correctness}
	}

	consistent := func(pw string) bool { return Commonality(pw, guess) == correctness }
	if !slices.ContainsFunc(h.passwords, consistent) {
		return &Error{Kind: KindImpossible, Candidate: guess, Correctness: correctness}
	}

	h.passwords = slices.DeleteFunc(h.passwords, func(pw string) bool { return !consistent(pw) })
	return nil
}

// Answer returns the password once it is the only candidate left.
func (h *Hacker) Answer() (string, error) {
	switch len(h.passwords) {
	case 0:
		return "", &Error{Kind: KindEmptyPool}
	case 1:
		return h.passwords[0], nil
	default:
		return "", &Error{Kind: KindNotYetDetermined}
	}
}

// Add inserts password as a new candidate.
func (h *Hacker) Add(password string) error {
	if !utf8.ValidString(password) {
		return &Error{Kind: KindInvalidPassword, Candidate: password}
	}
	if h.Contains(password) {
		return &Error{Kind: KindAlreadyPresent, Candidate: password}
	}
	h.passwords = append(h.passwords, password)
	return nil
}

// Remove drops password from the pool. The last remaining candidate cannot
// be removed.
func (h *Hacker) Remove(password string) error {
	i := slices.Index(h.passwords, password)
	if i < 0 {
		return &Error{Kind: KindUnknownCandidate, Candidate: password}
	}
	if len(h.passwords) == 1 {
		return &Error{Kind: KindLastCandidate, Candidate: password}
	}
	h.passwords = slices.Delete(h.passwords, i, i+1)
	return nil
}

// Clone returns an independent copy of the pool.
func (h *Hacker) Clone() *Hacker {
	return &Hacker{passwords: slices.Clone(h.passwords)}
}
