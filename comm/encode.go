package comm

type encoding struct {
	class byte
	// sub-code for mode commands; color commands send their value instead
	code     byte
	hasValue bool
}

var encodings = map[commandKind]encoding{
	fadeMode:   {class: classMode, code: 0x30},
	testMode:   {class: classMode, code: 0x31},
	manualMode: {class: classMode, code: 0x32},
	blinkMode:  {class: classMode, code: 0x33},
	offMode:    {class: classMode, code: 0x34},
	setRed:     {class: classRed, hasValue: true},
	setGreen:   {class: classGreen, hasValue: true},
	setBlue:    {class: classBlue, hasValue: true},
}

// EncodeChecked returns the wire frame for cmd, or an *EncodingError if the
// command has no entry in the encoding table.
func EncodeChecked(cmd Command) (Frame, error) {
	enc, ok := encodings[cmd.command]
	if !ok {
		return Frame{}, &EncodingError{Command: cmd}
	}
	if enc.hasValue {
		return Frame{enc.class, cmd.value}, nil
	}
	return Frame{enc.class, enc.code}, nil
}

// Encode returns the wire frame for cmd. It panics on the zero Command, which
// no constructor or ParseCommand can produce.
func Encode(cmd Command) Frame {
	frame, err := EncodeChecked(cmd)
	if err != nil {
		panic(err)
	}
	return frame
}
