package comm

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCommand    = errors.New("empty command")
	ErrUnknownCommand  = errors.New("unrecognized command")
	ErrMissingArgument = errors.New("missing argument")
	ErrInvalidArgument = errors.New("argument must be an integer between 0 and 255")
	ErrLineTooLong     = errors.New("input line too long")
)

// ParseError is returned for user input that does not form a valid command.
// It is recoverable; the session reports it and keeps going.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TransportError wraps a failure of the underlying device. It ends the session.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// EncodingError is returned when a command has no wire encoding.
type EncodingError struct {
	Command Command
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("no encoding for command %v", e.Command.command)
}

// IsFatal reports whether err should end a session.
func IsFatal(err error) bool {
	var parseErr *ParseError
	return err != nil && !errors.As(err, &parseErr)
}
