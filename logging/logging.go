/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var log = &logrus.Logger{
	Out: os.Stderr,
	Formatter: &logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	},
	Hooks: make(logrus.LevelHooks),
	Level: logrus.InfoLevel,
}

// InitializeLogging sets the global log level, e.g. "debug" or "INFO".
func InitializeLogging(loglevel string) error {
	level, err := logrus.ParseLevel(loglevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log.SetLevel(level)
	return nil
}

// SetOutput redirects every logger returned by GetLogger.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// GetLogger returns a logger tagged with the calling package.
func GetLogger(pkg string) *logrus.Entry {
	return log.WithField("package", pkg)
}
