// Package config defines the top-level CLI structure parsed by Kong.
package config

import "github.com/boncheolgu/annometa/internal/cmd"

// Log holds the logging flags shared by all commands.
type Log struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"ANNOMETA_LOG_LEVEL"`
	File  string `help:"Write logs to this file instead of the console" env:"ANNOMETA_LOG_FILE"`
}

// CLI is the root command structure.
type CLI struct {
	Log    Log    `embed:"" prefix:"log."`
	Config string `help:"Path to a configuration file" env:"ANNOMETA_CONFIG"`

	Check     cmd.Check         `cmd:"" help:"Report declarations that carry an annotation path"`
	Get       cmd.Get           `cmd:"" help:"Print the first literal value at an annotation path"`
	Flatten   cmd.Flatten       `cmd:"" help:"Collect annotations into a flattened key/value map"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Manage configuration files"`
}
