package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileDefaults is the YAML defaults file shape. Every field is optional;
// zero values mean "not set". CLI flags always win over file values.
type FileDefaults struct {
	Resolution string `yaml:"resolution"`
	FPS        uint32 `yaml:"fps"`
	Background string `yaml:"background"`
	Quality    uint32 `yaml:"quality"`
	Workers    int    `yaml:"workers"`
}

// LoadFile reads and decodes a YAML defaults file.
func LoadFile(path string) (FileDefaults, error) {
	var fd FileDefaults
	data, err := os.ReadFile(path)
	if err != nil {
		return fd, err
	}
	if err := yaml.Unmarshal(data, &fd); err != nil {
		return fd, fmt.Errorf("parse %s: %w", path, err)
	}
	return fd, nil
}

// Apply copies file defaults into o for every option the user did not set
// on the command line. changed reports whether the named flag was given.
func (fd FileDefaults) Apply(o *Options, changed func(flag string) bool) error {
	if fd.Resolution != "" && !changed("resolution") {
		w, h, err := ParseResolution(fd.Resolution)
		if err != nil {
			return err
		}
		o.Width, o.Height = w, h
	}
	if fd.FPS != 0 && !changed("fps") {
		o.FPS = fd.FPS
	}
	if fd.Background != "" && !changed("background") {
		bg, err := ParseBackground(fd.Background)
		if err != nil {
			return err
		}
		o.Background = bg
	}
	if fd.Quality != 0 && !changed("quality") {
		o.Quality = fd.Quality
	}
	if fd.Workers != 0 && !changed("workers") {
		o.Workers = fd.Workers
	}
	return nil
}
