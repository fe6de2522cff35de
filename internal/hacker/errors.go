package hacker

import (
	"errors"
	"fmt"
)

// Kind identifies why a pool operation was rejected.
type Kind int

const (
	// KindUnknownCandidate: the guess or removal target is not in the pool.
	KindUnknownCandidate Kind = iota + 1
	// KindInvalidCorrectness: the count is negative or longer than the guess.
	KindInvalidCorrectness
	// KindImpossible: no candidate is consistent with the feedback.
	KindImpossible
	// KindAlreadyPresent: Add of a password that is already a candidate.
	KindAlreadyPresent
	// KindLastCandidate: Remove of the only remaining candidate.
	KindLastCandidate
	// KindNotYetDetermined: more than one candidate remains.
	KindNotYetDetermined
	// KindEmptyPool: the pool holds no candidates.
	KindEmptyPool
	// KindInvalidPassword: a candidate is not valid UTF-8.
	KindInvalidPassword
)

func (k Kind) String() string {
	switch k {
	case KindUnknownCandidate:
		return "unknown_candidate"
	case KindInvalidCorrectness:
		return "invalid_correctness"
	case KindImpossible:
		return "impossible"
	case KindAlreadyPresent:
		return "already_present"
	case KindLastCandidate:
		return "last_candidate"
	case KindNotYetDetermined:
		return "not_yet_determined"
	case KindEmptyPool:
		return "empty_pool"
	case KindInvalidPassword:
		return "invalid_password"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the structured failure returned by every Hacker operation.
// Candidate and Correctness carry the offending input where one applies.
type Error struct {
	Kind        Kind
	Candidate   string
	Correctness int
}

// Sentinels for errors.Is. Matching compares Kind only.
var (
	ErrUnknownCandidate   = &Error{Kind: KindUnknownCandidate}
	ErrInvalidCorrectness = &Error{Kind: KindInvalidCorrectness}
	ErrImpossible         = &Error{Kind: KindImpossible}
	ErrAlreadyPresent     = &Error{Kind: KindAlreadyPresent}
	ErrLastCandidate      = &Error{Kind: KindLastCandidate}
	ErrNotYetDetermined   = &Error{Kind: KindNotYetDetermined}
	ErrEmptyPool          = &Error{Kind: KindEmptyPool}
	ErrInvalidPassword    = &Error{Kind: KindInvalidPassword}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnknownCandidate:
		return fmt.Sprintf("%q is not in the list of candidate passwords", e.Candidate)
	case KindInvalidCorrectness:
		return fmt.Sprintf("%q cannot have %d characters correct", e.Candidate, e.Correctness)
	case KindImpossible:
		return fmt.Sprintf("no candidate has %d characters in common with %q", e.Correctness, e.Candidate)
	case KindAlreadyPresent:
		return fmt.Sprintf("cannot add %q: already present", e.Candidate)
	case KindLastCandidate:
		return fmt.Sprintf("cannot remove %q: it is the last candidate", e.Candidate)
	case KindNotYetDetermined:
		return "password not yet determined"
	case KindEmptyPool:
		return "candidate pool is empty"
	case KindInvalidPassword:
		return fmt.Sprintf("%q is not valid UTF-8", e.Candidate)
	default:
		return e.Kind.String()
	}
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf extracts the Kind from err, or 0 if err is not a pool error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
