package main

import (
	"github.com/thiefmaster/rgbcontroller/comm"
	"github.com/thiefmaster/rgbcontroller/session"
)

// runStartupCommands sends the configured commands before handing over to
// the user, e.g. to switch to manual mode and set an initial color.
func runStartupCommands(sess *session.Session, commands []string) error {
	for _, line := range commands {
		if err := sess.Execute(line); comm.IsFatal(err) {
			return err
		}
	}
	return nil
}
