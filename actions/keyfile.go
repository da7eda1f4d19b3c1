/*
 * keyfile.go - Reading key descriptors stored in files.
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

package actions

import (
	"encoding/hex"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"

	"github.com/google/e4crypt/metadata"
	"github.com/google/e4crypt/util"
)

// ReadDescriptorFile reads a master key descriptor stored at path in its
// 16-character hex form, returning the 8 raw descriptor bytes. Surrounding
// whitespace (including a trailing newline) is tolerated.
func ReadDescriptorFile(path string) ([]byte, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(util.UnderlyingError(err), "reading key file")
	}

	text := strings.TrimSpace(string(data))
	if len(text) != metadata.HexDescriptorLen {
		return nil, util.InvalidLengthError("key file descriptor", metadata.HexDescriptorLen, len(text))
	}
	descriptor, err := hex.DecodeString(text)
	if err != nil {
		return nil, util.InvalidInputF("key file %q: %v", path, err)
	}
	return descriptor, nil
}
