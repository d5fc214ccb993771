package main

import (
	"github.com/cohesivestack/valgo"
	"github.com/joshjon/kit/log"

	"github.com/coro-sh/prefid/gen"
)

const defaultOutDir = "."

type Config struct {
	gen.Config `yaml:",inline"`
	Out        string       `yaml:"out" env:"OUT"` // default: .
	Logger     LoggerConfig `yaml:"logger" envPrefix:"LOGGER_"`
}

func (c *Config) InitDefaults() {
	c.Config.InitDefaults()
	c.Out = defaultOutDir
	c.Logger.InitDefaults()
}

// Validation only covers settings that cannot be given as flags. The
// generator config is validated once flags have been merged in.
func (c *Config) Validation() *valgo.Validation {
	v := valgo.New()
	v.In("logger", c.Logger.Validation())
	return v
}

type LoggerConfig struct {
	Level      string `yaml:"level" env:"LEVEL"`           // default: info
	Structured bool   `yaml:"structured" env:"STRUCTURED"` // default: false
}

func (c *LoggerConfig) InitDefaults() {
	c.Level = "info"
}

func (c *LoggerConfig) Validation() *valgo.Validation {
	return valgo.Is(valgo.String(c.Level, "level").Passing(func(_ string) bool {
		_, ok := log.ParseLevel(c.Level)
		return ok
	}, "Must be one of [debug, info, warn, error]"))
}
