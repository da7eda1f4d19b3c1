/*
 * errors.go - Errors and exit codes for the top level interface.
 *
 * Copyright 2018 Google Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not
 * use this file except in compliance with the License. You may obtain a copy of
 * the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations under
 * the License.
 */

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// failureExitCode is the value e4crypt will return on failure.
const failureExitCode = 1

// Errors for bad key flag combinations
var (
	ErrSpecifyKey    = errors.New("no key descriptor specified, use --key or --key-file")
	ErrSpecifyOneKey = errors.New("--key and --key-file cannot both be used")
)

// getFullName returns the full name of the application or command being used.
func getFullName(c *cli.Context) string {
	if c.Command.HelpName != "" {
		return c.Command.HelpName
	}
	return c.App.HelpName
}

// newExitError turns err into an error that makes the application exit with
// failureExitCode after printing the message.
func newExitError(c *cli.Context, err error) error {
	return cli.NewExitError(fmt.Sprintf("%s: %v", getFullName(c), err), failureExitCode)
}

// expectedArgsErr reports that the command received the wrong number of
// non-flag arguments.
func expectedArgsErr(c *cli.Context, expected int) error {
	return newExitError(c, fmt.Errorf("expected %d argument(s), got %d", expected, c.NArg()))
}
