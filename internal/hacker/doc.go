// Package hacker implements the candidate pool behind the terminal hacking
// puzzle: a set of possible passwords that shrinks as positional-match
// feedback arrives, plus a recommender that picks the most informative guess.
//
// A Hacker is owned by one session. It has no internal locking; callers that
// share one across goroutines must serialize access themselves.
package hacker
