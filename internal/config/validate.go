package config

import (
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validate ensures the config is usable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required, validation.By(absolutePath)),
		validation.Field(&c.Arch, validation.Match(archPattern)),
		validation.Field(&c.Manifest),
	)
}

// Validate ensures the manifest settings are usable.
func (m ManifestConfig) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.URL, validation.Required, is.URL),
		validation.Field(&m.TimeoutSeconds, validation.Required, validation.Min(1), validation.Max(600)),
	)
}

func absolutePath(value interface{}) error {
	s, _ := value.(string)
	if !filepath.IsAbs(s) {
		return validation.NewError("validation_path_absolute", "must be an absolute path")
	}
	return nil
}
