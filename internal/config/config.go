// Package config defines the CLI structure and configuration for padlink.
package config

import (
	"github.com/robolink/padlink/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"PADLINK_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"PADLINK_LOG_FILE"`
	RawFile string `help:"Raw packet log file path (default: none)" env:"PADLINK_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Config string `help:"Config file (JSON, YAML or TOML)" env:"PADLINK_CONFIG" type:"path"`

	Encode  cmd.Encode  `cmd:"" help:"Encode an inputs packet and print it as hex"`
	Decode  cmd.Decode  `cmd:"" help:"Decode a hex inputs packet and print it"`
	Monitor cmd.Monitor `cmd:"" help:"Print every inputs packet received on a serial port"`
	Send    cmd.Send    `cmd:"" help:"Send an inputs packet over a serial port"`
}
