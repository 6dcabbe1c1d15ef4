// Package config resolves runtime settings from the environment.
// The program takes no flags and reads no files.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/digital-rain/constants"
)

// Config holds settings read once at startup
type Config struct {
	Debug bool   // write logs/digital-rain.log
	Audio bool   // play drain chimes
	Seed  uint64 // 0 draws a random seed
}

// LookupFunc matches os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Load reads settings via lookup; unset or empty variables keep their defaults
func Load(lookup LookupFunc) (Config, error) {
	var cfg Config
	var err error

	if cfg.Debug, err = parseBool(lookup, constants.EnvDebug); err != nil {
		return Config{}, err
	}
	if cfg.Audio, err = parseBool(lookup, constants.EnvAudio); err != nil {
		return Config{}, err
	}

	if v, ok := lookup(constants.EnvSeed); ok && strings.TrimSpace(v) != "" {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", constants.EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func parseBool(lookup LookupFunc, key string) (bool, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%s=%q: %w", key, v, err)
	}
	return b, nil
}
