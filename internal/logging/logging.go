// Package logging configures the one logrus root logger the CLI builds
// at startup and hands down to every other package as a *logrus.Entry.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Options controls the root logger New builds.
type Options struct {
	Verbose bool // Debug level instead of Info
	JSON    bool // JSON formatting instead of the default text formatter
}

// New builds the root *logrus.Entry every package constructor in this
// module accepts. Formatting defaults to logrus's text formatter;
// passing JSON (or setting ADERYN_JSON_LOGS=true in the environment)
// switches to structured output for CI logs and other non-interactive
// consumers.
func New(opts Options) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	if opts.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logrus.NewEntry(log)
}
