package comm

import (
	"strconv"
	"strings"
)

var commandKinds = func() map[string]commandKind {
	kinds := make(map[string]commandKind, len(kindNames))
	for kind, name := range kindNames {
		kinds[name] = kind
	}
	return kinds
}()

// ParseCommand turns one line of user input such as "red 128" into a Command.
// Names are matched case-insensitively and tokens after the argument are
// ignored. Any failure is returned as a *ParseError.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, &ParseError{Input: line, Err: ErrEmptyCommand}
	}

	kind, ok := commandKinds[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, &ParseError{Input: line, Err: ErrUnknownCommand}
	}
	if !encodings[kind].hasValue {
		return Command{command: kind}, nil
	}

	if len(fields) < 2 {
		return Command{}, &ParseError{Input: line, Err: ErrMissingArgument}
	}
	value, err := strconv.Atoi(fields[1])
	if err != nil || value < 0 || value > 255 {
		return Command{}, &ParseError{Input: line, Err: ErrInvalidArgument}
	}
	return Command{command: kind, value: byte(value)}, nil
}
