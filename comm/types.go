package comm

import "fmt"

type commandKind int

// commandKind values
const (
	invalid commandKind = iota
	fadeMode
	testMode
	manualMode
	blinkMode
	offMode
	setRed
	setGreen
	setBlue
)

// command class bytes
const (
	classMode  = 0x4D
	classRed   = 0x52
	classGreen = 0x47
	classBlue  = 0x42
)

var kindNames = map[commandKind]string{
	fadeMode:   "fade",
	testMode:   "test",
	manualMode: "manual",
	blinkMode:  "blink",
	offMode:    "off",
	setRed:     "red",
	setGreen:   "green",
	setBlue:    "blue",
}

func (k commandKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("commandKind(%d)", int(k))
}

// Command is a single request for the LED controller. The zero value is not
// a valid command; use one of the New*Command constructors or ParseCommand.
type Command struct {
	command commandKind
	value   byte
}

func (c Command) String() string {
	if encodings[c.command].hasValue {
		return fmt.Sprintf("%s %d", c.command, c.value)
	}
	return c.command.String()
}

// Frame is the 2 byte unit written to the device for one command.
type Frame [2]byte

func (f Frame) Bytes() []byte {
	return f[:]
}

func (f Frame) String() string {
	return fmt.Sprintf("[0x%02X 0x%02X]", f[0], f[1])
}
