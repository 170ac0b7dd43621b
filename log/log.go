// Copyright © 2024 The miniql Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log is a thin package-level facade over logrus, trimmed to the
// levels and sinks this engine actually needs: there is no stackdriver hook
// or structured JSON output here, since there is no hosted deployment
// target for an embeddable engine to report to.
package log

import (
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

type Logger struct {
	*logrus.Logger
}

var log *Logger

func init() {
	log = &Logger{logrus.New()}
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Instance returns the underlying logrus logger, for callers (e.g. cobra
// command wiring) that need to pass it along whole.
func Instance() *logrus.Logger {
	return log.Logger
}

// SetLevel sets the logging level by name; an unrecognized name leaves the
// level unchanged.
func SetLevel(v string) {
	switch v {
	case "debug":
		log.Logger.SetLevel(DebugLevel)
	case "info":
		log.Logger.SetLevel(InfoLevel)
	case "warn":
		log.Logger.SetLevel(WarnLevel)
	case "error":
		log.Logger.SetLevel(ErrorLevel)
	}
}

// SetOutput directs logging output to stdout, stderr, or nowhere.
func SetOutput(v string) {
	switch v {
	case "none":
		log.Logger.SetOutput(ioutil.Discard)
	case "stdout":
		log.Logger.SetOutput(os.Stdout)
	case "stderr":
		log.Logger.SetOutput(os.Stderr)
	}
}

func Debug(v ...interface{})                 { log.Debug(v...) }
func Debugf(format string, v ...interface{}) { log.Debugf(format, v...) }

func Info(v ...interface{})                 { log.Info(v...) }
func Infof(format string, v ...interface{}) { log.Infof(format, v...) }

func Warn(v ...interface{})                 { log.Warn(v...) }
func Warnf(format string, v ...interface{}) { log.Warnf(format, v...) }

func Error(v ...interface{})                 { log.Error(v...) }
func Errorf(format string, v ...interface{}) { log.Errorf(format, v...) }
