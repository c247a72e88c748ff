package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read when --config is not given and the file exists.
const DefaultConfigFile = "daogen.yaml"

// Settings are the merged values of the config file and the flags.
type Settings struct {
	Schema   string `yaml:"schema" validate:"required"`
	Target   string `yaml:"target"`
	Package  string `yaml:"package"`
	Header   string `yaml:"header"`
	Workers  int    `yaml:"workers" validate:"gte=0"`
	FailFast bool   `yaml:"fail_fast"`
	Format   string `yaml:"format" validate:"omitempty,oneof=json yaml yml msgpack"`
	Driver   string `yaml:"driver" validate:"omitempty,oneof=mysql sqlite"`
	DSN      string `yaml:"dsn"`
}

// readSettings reads the config file at path. A missing default file yields
// empty settings.
func readSettings(path string) (*Settings, error) {
	s := &Settings{}
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("daogen: read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("daogen: parse config %s: %w", path, err)
	}
	return s, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the merged settings.
func (s *Settings) Validate() error {
	err := validate.Struct(s)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return fmt.Errorf("daogen: invalid settings: %s", strings.Join(msgs, ", "))
}
