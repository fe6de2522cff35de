// Package command parses the line-oriented commands of an interactive
// hacking session.
package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Verb is the action a command asks for.
type Verb int

const (
	Exit Verb = iota + 1
	View
	Recommend
	Rank
	Answer
	Guess
	Add
	Remove
	Help
)

var verbNames = map[string]Verb{
	"exit":      Exit,
	"quit":      Exit,
	"view":      View,
	"recommend": Recommend,
	"rank":      Rank,
	"answer":    Answer,
	"guess":     Guess,
	"add":       Add,
	"remove":    Remove,
	"help":      Help,
}

func (v Verb) String() string {
	switch v {
	case Exit:
		return "exit"
	case View:
		return "view"
	case Recommend:
		return "recommend"
	case Rank:
		return "rank"
	case Answer:
		return "answer"
	case Guess:
		return "guess"
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Help:
		return "help"
	default:
		return fmt.Sprintf("verb(%d)", int(v))
	}
}

// Command is one parsed request. Password is set for Guess, Add and Remove;
// Correctness only for Guess.
type Command struct {
	Verb        Verb
	Password    string
	Correctness int
}

// Parse turns one input line into a Command.
func Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, &ParseError{Kind: Blank}
	}
	verb, ok := verbNames[strings.ToLower(tokens[0])]
	if !ok {
		return Command{}, &ParseError{Kind: UnrecognisedCommand, Token: tokens[0]}
	}
	args := tokens[1:]

	switch verb {
	case Guess:
		if len(args) < 1 {
			return Command{}, &ParseError{Kind: MissingToken, Token: "guess"}
		}
		if len(args) < 2 {
			return Command{}, &ParseError{Kind: MissingToken, Token: "correctness"}
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return Command{}, &ParseError{Kind: MalformedCorrectness, Token: args[1], Err: err}
		}
		if err := noMore(args[2:]); err != nil {
			return Command{}, err
		}
		return Command{Verb: Guess, Password: args[0], Correctness: n}, nil

	case Add, Remove:
		if len(args) < 1 {
			return Command{}, &ParseError{Kind: MissingToken, Token: "password to " + verb.String()}
		}
		if err := noMore(args[1:]); err != nil {
			return Command{}, err
		}
		return Command{Verb: verb, Password: args[0]}, nil

	default:
		if err := noMore(args); err != nil {
			return Command{}, err
		}
		return Command{Verb: verb}, nil
	}
}

func noMore(args []string) error {
	if len(args) > 0 {
		return &ParseError{Kind: UnexpectedToken, Token: args[0]}
	}
	return nil
}
