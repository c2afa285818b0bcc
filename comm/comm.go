package comm

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/tarm/serial"
	"go.uber.org/zap"
)

const (
	DefaultBaud        = 115200
	DefaultReadTimeout = 1 * time.Second
)

type PortConfig struct {
	Name        string
	Baud        int
	ReadTimeout time.Duration
}

func (c PortConfig) serialConfig() *serial.Config {
	baud := c.Baud
	if baud == 0 {
		baud = DefaultBaud
	}
	timeout := c.ReadTimeout
	if timeout == 0 {
		timeout = DefaultReadTimeout
	}
	return &serial.Config{
		Name:        c.Name,
		Baud:        baud,
		ReadTimeout: timeout,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
	}
}

// OpenPort opens the serial device described by cfg. The caller owns the
// returned port and must close it.
func OpenPort(cfg PortConfig, log *zap.SugaredLogger) (io.ReadWriteCloser, error) {
	sc := cfg.serialConfig()
	log.Infof("opening serial port %s (%d baud, %v read timeout)", sc.Name, sc.Baud, sc.ReadTimeout)
	conn, err := serial.OpenPort(sc)
	if err != nil {
		return nil, &TransportError{Op: "open", Err: errors.Wrapf(err, "OpenPort %s", sc.Name)}
	}
	return conn, nil
}

// WriteFrame writes frame to w in a single call.
func WriteFrame(w io.Writer, frame Frame) error {
	n, err := w.Write(frame.Bytes())
	if err != nil {
		return &TransportError{Op: "write", Err: errors.Wrap(err, "Write")}
	}
	if n != len(frame) {
		return &TransportError{Op: "write", Err: errors.Wrapf(io.ErrShortWrite, "wrote %d of %d bytes", n, len(frame))}
	}
	return nil
}
