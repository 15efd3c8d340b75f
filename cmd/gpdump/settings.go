package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Garik-/gpscore/pkg/model"
)

// loadSettings reads yaml settings over the defaults. An empty name yields the defaults.
func loadSettings(name string) (*model.Settings, error) {
	settings := model.DefaultSettings()
	if name == "" {
		return settings, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read settings")
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, errors.Wrapf(err, "parse settings %s", name)
	}
	return settings, nil
}
