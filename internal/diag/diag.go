/**
 * Copyright 2024 a002845 authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License"): you may
 * not use this file except in compliance with the License. You may obtain
 * a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations
 * under the License.
 */

// Package diag is the ambient logging surface for the core: invariant
// breaches are fatal, everything else is an optional verbose diagnostic.
// Both go to stderr so the driver's column report on stdout stays exact.
package diag

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   false,
		TimestampFormat: "15:04:05.000",
	}
	return l
}

// Fatal logs err with msg and terminates the process. It is the sole
// response to a broken canonicalization invariant (§7: invariant breaches
// are fatal) — never a panic across an exported boundary.
func Fatal(err error, msg string) {
	log.WithError(err).Fatal(msg)
}

// Fatalf logs a formatted message and terminates the process, for
// invariant breaches that have no underlying error value to attach.
func Fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}

// Verbosef logs a formatted diagnostic line when verbose is true. It never
// writes to stdout, so it cannot disturb the driver's required column
// format.
func Verbosef(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	log.Infof(format, args...)
}
