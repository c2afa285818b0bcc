// Package session runs the interactive exchange loop with the LED controller:
// read a command from the user, send its frame, report the device's answer.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/thiefmaster/rgbcontroller/comm"
)

type State int

const (
	AwaitingInput State = iota
	AwaitingResponse
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting input"
	case AwaitingResponse:
		return "awaiting response"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

const (
	Prompt         = "Input a command: "
	ResponsePrefix = "Return from system: "
)

// maxInputLine bounds a line of user input; longer lines are rejected.
const maxInputLine = 4096

type Options struct {
	Input  io.Reader
	Output io.Writer
	Logger *zap.SugaredLogger
	// Prompt enables the input prompt, normally only for terminals.
	Prompt bool
}

// Session owns one transport for its whole lifetime. It is not safe for
// concurrent use.
type Session struct {
	port      io.ReadWriteCloser
	responses *comm.ResponseReader
	input     *bufio.Reader
	out       io.Writer
	log       *zap.SugaredLogger
	prompt    bool
	state     State
	closed    bool
}

func New(port io.ReadWriteCloser, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	var input *bufio.Reader
	if opts.Input != nil {
		input = bufio.NewReaderSize(opts.Input, maxInputLine)
	}
	return &Session{
		port:      port,
		responses: comm.NewResponseReader(port),
		input:     input,
		out:       out,
		log:       log,
		prompt:    opts.Prompt,
		state:     AwaitingInput,
	}
}

func (s *Session) State() State {
	return s.state
}

// Run reads commands until the input is exhausted or the transport fails.
// The transport is closed before Run returns. End of input is not an error.
func (s *Session) Run() (err error) {
	defer func() {
		if closeErr := s.Close(); err == nil {
			err = closeErr
		}
	}()
	if s.input == nil {
		return errors.New("session has no input")
	}

	for {
		if s.prompt {
			fmt.Fprint(s.out, Prompt)
		}
		line, tooLong, err := s.readInput()
		if err == io.EOF {
			s.log.Info("end of input")
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not read input: %w", err)
		}
		if tooLong {
			err = s.reject(&comm.ParseError{Input: abbreviate(line), Err: comm.ErrLineTooLong})
		} else {
			err = s.Execute(line)
		}
		if comm.IsFatal(err) {
			s.log.Errorf("session ended: %v", err)
			fmt.Fprintf(s.out, "fatal: %v\n", err)
			return err
		}
	}
}

// Execute handles one line of user input. Parse errors are reported to the
// user and returned without touching the transport.
func (s *Session) Execute(line string) error {
	cmd, err := comm.ParseCommand(line)
	if err != nil {
		return s.reject(err)
	}
	response, err := s.Exchange(cmd)
	if err != nil {
		return err
	}
	if response != "" {
		fmt.Fprintln(s.out, ResponsePrefix+response)
	}
	return nil
}

func (s *Session) reject(err error) error {
	s.log.Warnf("rejected input: %v", err)
	fmt.Fprintf(s.out, "error: %v\n", err)
	return err
}

// readInput returns the next line of user input. A line longer than the
// input buffer is consumed up to its end and flagged as too long.
func (s *Session) readInput() (string, bool, error) {
	data, isPrefix, err := s.input.ReadLine()
	if err != nil {
		return "", false, err
	}
	line, tooLong := string(data), isPrefix
	for isPrefix {
		_, isPrefix, err = s.input.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", false, err
		}
	}
	return line, tooLong, nil
}

func abbreviate(line string) string {
	if len(line) <= 32 {
		return line
	}
	return line[:32] + "..."
}

// Exchange writes the frame for cmd and reads one response line, which is
// empty when the device stays silent until the read timeout.
func (s *Session) Exchange(cmd comm.Command) (string, error) {
	if s.closed {
		return "", &comm.TransportError{Op: "write", Err: io.ErrClosedPipe}
	}
	frame, err := comm.EncodeChecked(cmd)
	if err != nil {
		return "", err
	}

	s.log.Infof("issuing %s command %v", cmd, frame)
	if err := comm.WriteFrame(s.port, frame); err != nil {
		return "", err
	}

	s.state = AwaitingResponse
	defer func() { s.state = AwaitingInput }()
	response, err := s.responses.ReadResponse()
	if err != nil {
		return "", err
	}
	if response != "" {
		s.log.Debugf("response: %s", response)
	}
	return response, nil
}

// Close releases the transport. Calling it more than once is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.log.Info("closing serial port")
	if err := s.port.Close(); err != nil {
		return &comm.TransportError{Op: "close", Err: err}
	}
	return nil
}
