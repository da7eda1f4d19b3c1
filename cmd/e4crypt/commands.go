/*
 * commands.go - The set, get, and ensure subcommands.
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

	"github.com/urfave/cli"

	"github.com/google/e4crypt/actions"
	"github.com/google/e4crypt/metadata"
)

const directoryArg = "<directory>"

// Set installs an encryption policy on an empty directory.
var Set = cli.Command{
	Name:      "set",
	ArgsUsage: directoryArg,
	Usage:     "set an encryption policy on an empty directory",
	Description: fmt.Sprintf(`This command encrypts %[1]s with the master
		key named by the descriptor given with --key or --key-file.
		%[1]s must be writable and empty (a "lost+found" entry is
		allowed). A policy cannot be changed once files exist under
		%[1]s.`, directoryArg),
	Flags:  []cli.Flag{keyFlag, keyFileFlag},
	Action: setAction,
}

func setAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return expectedArgsErr(c, 1)
	}
	directory := c.Args().Get(0)

	descriptor, err := descriptorFromFlags(c)
	if err != nil {
		return newExitError(c, err)
	}
	if err := actions.SetPolicy(directory, descriptor); err != nil {
		return newExitError(c, err)
	}

	if !quiet {
		fmt.Fprintf(c.App.Writer, "%q is now encrypted with policy %s\n",
			directory, metadata.DescriptorHex(descriptor))
	}
	return nil
}

// Get prints the key descriptor of the policy a directory carries.
var Get = cli.Command{
	Name:      "get",
	ArgsUsage: directoryArg,
	Usage:     "print the encryption policy of a directory",
	Description: fmt.Sprintf(`This command prints the 16-character hex key
		descriptor of the encryption policy on %[1]s. It fails if
		%[1]s has no policy or carries a policy with unsupported
		options.`, directoryArg),
	Action: getAction,
}

func getAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return expectedArgsErr(c, 1)
	}
	directory := c.Args().Get(0)

	descriptor := make([]byte, metadata.KeyDescriptorLen)
	if err := actions.GetPolicy(directory, descriptor); err != nil {
		return newExitError(c, err)
	}

	fmt.Fprintln(c.App.Writer, metadata.DescriptorHex(descriptor))
	return nil
}

// Ensure sets a policy if absent and verifies it if present.
var Ensure = cli.Command{
	Name:      "ensure",
	ArgsUsage: directoryArg,
	Usage:     "make sure a directory carries the expected encryption policy",
	Description: fmt.Sprintf(`This command verifies that %[1]s is encrypted
		with the expected policy, setting the policy first if %[1]s
		does not have one. Running it twice with the same key is safe.
		It fails without mutating anything if %[1]s already carries a
		policy with a different key descriptor.`, directoryArg),
	Flags:  []cli.Flag{keyFlag, keyFileFlag},
	Action: ensureAction,
}

func ensureAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return expectedArgsErr(c, 1)
	}
	directory := c.Args().Get(0)

	descriptor, err := descriptorFromFlags(c)
	if err != nil {
		return newExitError(c, err)
	}
	if err := actions.EnsurePolicy(directory, descriptor); err != nil {
		return newExitError(c, err)
	}

	if !quiet {
		fmt.Fprintf(c.App.Writer, "%q is encrypted with policy %s\n",
			directory, metadata.DescriptorHex(descriptor))
	}
	return nil
}
