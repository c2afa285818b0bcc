package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/thiefmaster/rgbcontroller/comm"
	"github.com/thiefmaster/rgbcontroller/session"
)

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func promptEnabled(cfg appConfig) bool {
	if cfg.Prompt != nil {
		return *cfg.Prompt
	}
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func run(args []string) int {
	cfg, err := parseConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [port]\n%v\n", os.Args[0], err)
		return 2
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create logger: %v\n", err)
		return 1
	}
	defer logger.Sync()
	log := logger.Sugar()

	port, err := comm.OpenPort(cfg.portConfig(), log)
	if err != nil {
		log.Errorf("could not open serial port: %v", err)
		return 1
	}

	sess := session.New(port, session.Options{
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: log,
		Prompt: promptEnabled(cfg),
	})
	defer sess.Close()

	if err := runStartupCommands(sess, cfg.Startup); err != nil {
		log.Errorf("startup commands failed: %v", err)
		return 1
	}
	if err := sess.Run(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:]))
}
