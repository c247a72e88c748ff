package gen

import (
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// DefaultHeader is written at the top of every generated file.
const DefaultHeader = "Code generated by daogen. DO NOT EDIT."

// DefaultPackage is the package name of generated code when none is configured.
const DefaultPackage = "dao"

// Config holds the settings of one generation pass.
type Config struct {
	// Package is the name of the generated Go package.
	Package string
	// Target is the output directory of DirSink.
	Target string
	// Header is the comment text written at the top of each generated file.
	Header string
	// Workers bounds the number of entities mapped and rendered in parallel.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int
	// FailFast stops generation before anything is emitted if any entity
	// failed to map.
	FailFast bool
	// Logger receives progress and failure logs. Nil discards them.
	Logger logrus.FieldLogger
	// Generator renders the mapped entities. Generate requires it.
	Generator Generator
}

// Output groups the settings that shape the emitted files.
type Output struct {
	Package string
	Target  string
	Header  string
}

// Output returns the output settings of the config with defaults applied.
func (c *Config) Output() Output {
	o := Output{Package: c.Package, Target: c.Target, Header: c.Header}
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.Header == "" {
		o.Header = DefaultHeader
	}
	return o
}

func (c *Config) workers() int {
	if c == nil || c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func (c *Config) logger() logrus.FieldLogger {
	if c == nil || c.Logger == nil {
		return discard
	}
	return c.Logger
}
