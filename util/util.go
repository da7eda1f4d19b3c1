/*
 * util.go - Various helpers used throughout e4crypt
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

// Package util contains useful components for simplifying Go code.
//
// The package contains common error types (errors.go) and a helper for
// locating the filesystem used in integration tests.
package util

import (
	"fmt"
	"os"
)

// TestRootEnv is the environment variable containing the path under which
// integration tests may set encryption policies. It should be a directory on
// an ext4 filesystem with the encrypt feature enabled.
const TestRootEnv = "E4CRYPT_TEST_ROOT"

// TestRoot returns the directory integration tests should create their
// directories under, or an error if none was configured.
func TestRoot() (string, error) {
	path := os.Getenv(TestRootEnv)
	if path == "" {
		return "", fmt.Errorf("set %s to a directory on an ext4 filesystem supporting encryption", TestRootEnv)
	}
	return path, nil
}
