package command

import "fmt"

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	Blank ErrorKind = iota + 1
	UnrecognisedCommand
	UnexpectedToken
	MissingToken
	MalformedCorrectness
)

// ParseError describes why a line could not be parsed. Token holds the
// offending input, or for MissingToken the name of what was expected.
type ParseError struct {
	Kind  ErrorKind
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case Blank:
		return "expected command, found blank line"
	case UnrecognisedCommand:
		return fmt.Sprintf("command not recognised: %s", e.Token)
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token: %s", e.Token)
	case MissingToken:
		return fmt.Sprintf("expected token: <%s>, found nothing", e.Token)
	case MalformedCorrectness:
		return fmt.Sprintf("cannot parse correctness value: expected nonnegative integer, found %s", e.Token)
	default:
		return "parse error"
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
