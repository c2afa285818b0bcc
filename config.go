package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/thiefmaster/rgbcontroller/comm"
)

const defaultConfigPath = "config.yaml"

type appConfig struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration `yaml:"readTimeout"`
	Prompt      *bool
	Startup     []string
	Verbose     bool
}

func defaultConfig() appConfig {
	return appConfig{
		Baud:        comm.DefaultBaud,
		ReadTimeout: comm.DefaultReadTimeout,
	}
}

func (c *appConfig) load(path string) error {
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not open config file: %w", err)
	}
	if err = yaml.UnmarshalStrict(yamlFile, c); err != nil {
		return fmt.Errorf("could not parse config file: %w", err)
	}
	return nil
}

func (c *appConfig) validate() error {
	if c.Port == "" {
		return errors.New("no serial port configured")
	}
	if c.Baud <= 0 {
		return fmt.Errorf("invalid baud rate: %d", c.Baud)
	}
	if c.ReadTimeout <= 0 {
		return fmt.Errorf("invalid read timeout: %v", c.ReadTimeout)
	}
	for _, line := range c.Startup {
		if _, err := comm.ParseCommand(line); err != nil {
			return fmt.Errorf("invalid startup command: %w", err)
		}
	}
	return nil
}

func (c *appConfig) portConfig() comm.PortConfig {
	return comm.PortConfig{Name: c.Port, Baud: c.Baud, ReadTimeout: c.ReadTimeout}
}

// parseConfig builds the configuration from the config file and the command
// line. Flags win over the file; a missing default config file is fine.
func parseConfig(args []string) (appConfig, error) {
	cfg := defaultConfig()

	flags := pflag.NewFlagSet("rgbcontroller", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", defaultConfigPath, "path to the YAML config file")
	port := flags.StringP("port", "p", "", "serial port of the LED controller, e.g. COM5 or /dev/ttyACM0")
	baud := flags.Int("baud", 0, "baud rate (default 115200)")
	timeout := flags.Duration("timeout", 0, "response read timeout (default 1s)")
	verbose := flags.BoolP("verbose", "v", false, "enable debug logging")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	if err := cfg.load(*configPath); err != nil {
		if flags.Changed("config") || !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
	}

	if flags.NArg() > 0 {
		cfg.Port = flags.Arg(0)
	}
	if flags.Changed("port") {
		cfg.Port = *port
	}
	if flags.Changed("baud") {
		cfg.Baud = *baud
	}
	if flags.Changed("timeout") {
		cfg.ReadTimeout = *timeout
	}
	if flags.Changed("verbose") {
		cfg.Verbose = *verbose
	}
	return cfg, cfg.validate()
}
