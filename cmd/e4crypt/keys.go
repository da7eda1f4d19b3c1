/*
 * keys.go - Reading the key descriptor from command line flags.
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
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/google/e4crypt/actions"
	"github.com/google/e4crypt/metadata"
	"github.com/google/e4crypt/util"
)

var (
	keyFlag = cli.StringFlag{
		Name:  "key",
		Usage: "the master key descriptor as 16 hex characters",
	}
	keyFileFlag = cli.StringFlag{
		Name:  "key-file",
		Usage: "path to a file containing the hex key descriptor",
	}
)

// descriptorFromFlags returns the 8-byte key descriptor named by --key or
// --key-file. Exactly one of the two must be used.
func descriptorFromFlags(c *cli.Context) ([]byte, error) {
	key := c.String("key")
	keyFile := c.String("key-file")

	switch {
	case key != "" && keyFile != "":
		return nil, ErrSpecifyOneKey
	case keyFile != "":
		return actions.ReadDescriptorFile(keyFile)
	case key != "":
		if len(key) != metadata.HexDescriptorLen {
			return nil, util.InvalidLengthError("hex key descriptor",
				metadata.HexDescriptorLen, len(key))
		}
		descriptor, err := hex.DecodeString(key)
		if err != nil {
			return nil, util.InvalidInputF("key descriptor %q: %v", key, err)
		}
		return descriptor, nil
	default:
		return nil, ErrSpecifyKey
	}
}
