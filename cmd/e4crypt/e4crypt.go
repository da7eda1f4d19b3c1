/*
 * e4crypt.go - Command line entry point and global flags.
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

/*
e4crypt is a command line tool for managing ext4 directory encryption
policies. It can set a policy on an empty directory, print the policy a
directory carries, and idempotently ensure a directory carries an expected
policy.
*/
package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/urfave/cli"
)

const version = "0.1.0"

var (
	verbose bool
	quiet   bool

	verboseFlag = cli.BoolFlag{
		Name:        "verbose",
		Usage:       "print additional debug messages to standard error",
		Destination: &verbose,
	}
	quietFlag = cli.BoolFlag{
		Name:        "quiet",
		Usage:       "print nothing to standard output except for errors",
		Destination: &quiet,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "e4crypt"
	app.Usage = "manage ext4 directory encryption policies"
	app.Version = version
	app.Flags = []cli.Flag{verboseFlag, quietFlag}
	app.Before = func(c *cli.Context) error {
		// Diagnostics from the library packages go through the standard
		// logger, which stays silent unless --verbose is used.
		if verbose {
			log.SetOutput(os.Stderr)
		} else {
			log.SetOutput(ioutil.Discard)
		}
		return nil
	}
	app.Commands = []cli.Command{Set, Get, Ensure}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.Name, err)
		os.Exit(failureExitCode)
	}
}
