package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/topic-manager/internal/messages"
)

// ErrConfigValidation wraps config validation failures (as opposed to TOML syntax or
// filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

var readFile = os.ReadFile

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes config TOML over the defaults and validates the result.
// source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidanceFmt, ErrConfigValidation, source, strict.String(), source)
		}
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigValidationFmt+" "+messages.ConfigValidationGuidanceFmt, ErrConfigValidation, source, err, source)
	}
	return cfg, nil
}
