package comm

func NewFadeCommand() Command {
	return Command{command: fadeMode}
}

func NewTestCommand() Command {
	return Command{command: testMode}
}

func NewManualCommand() Command {
	return Command{command: manualMode}
}

func NewBlinkCommand() Command {
	return Command{command: blinkMode}
}

func NewOffCommand() Command {
	return Command{command: offMode}
}

func NewSetRedCommand(value byte) Command {
	return Command{command: setRed, value: value}
}

func NewSetGreenCommand(value byte) Command {
	return Command{command: setGreen, value: value}
}

func NewSetBlueCommand(value byte) Command {
	return Command{command: setBlue, value: value}
}
