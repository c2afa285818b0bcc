package comm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in     string
		expect Command
	}{
		{"fade", NewFadeCommand()},
		{"test", NewTestCommand()},
		{"manual", NewManualCommand()},
		{"blink", NewBlinkCommand()},
		{"off", NewOffCommand()},
		{"OFF", NewOffCommand()},
		{"  Manual  ", NewManualCommand()},
		{"off 12", NewOffCommand()},
		{"red 128", NewSetRedCommand(128)},
		{"green 0", NewSetGreenCommand(0)},
		{"blue 255", NewSetBlueCommand(255)},
		{"Blue\t7 extra", NewSetBlueCommand(7)},
		{"red +5", NewSetRedCommand(5)},
		{"green 007", NewSetGreenCommand(7)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			cmd, err := ParseCommand(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.expect, cmd)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		in     string
		expect error
	}{
		{"", ErrEmptyCommand},
		{"   ", ErrEmptyCommand},
		{"foo", ErrUnknownCommand},
		{"purple 10", ErrUnknownCommand},
		{"blue", ErrMissingArgument},
		{"red", ErrMissingArgument},
		{"red -1", ErrInvalidArgument},
		{"green 256", ErrInvalidArgument},
		{"blue 1000", ErrInvalidArgument},
		{"red abc", ErrInvalidArgument},
		{"red 1.5", ErrInvalidArgument},
		{"red 0x10", ErrInvalidArgument},
		{"green +256", ErrInvalidArgument},
		{"blue 99999999999999999999", ErrInvalidArgument},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			_, err := ParseCommand(tc.in)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tc.in, parseErr.Input)
			require.ErrorIs(t, err, tc.expect)
			require.False(t, IsFatal(err))
		})
	}
}

func TestEveryCommandKindParses(t *testing.T) {
	for kind, name := range kindNames {
		cmd, err := ParseCommand(name + " 1")
		require.NoError(t, err, name)
		require.Equal(t, kind, cmd.command)
		require.Equal(t, encodings[kind].hasValue, cmd.value == 1, name)
	}
	require.Len(t, commandKinds, len(encodings))
}
