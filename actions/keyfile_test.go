/*
 * keyfile_test.go - Tests reading key descriptors from files.
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
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeKeyFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keyfile")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadDescriptorFile(t *testing.T) {
	descriptor, err := ReadDescriptorFile(writeKeyFile(t, "0123456789abcdef\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(descriptor, goodDescriptor) {
		t.Errorf("got descriptor %x, want %x", descriptor, goodDescriptor)
	}
}

func TestReadDescriptorFileBadContents(t *testing.T) {
	for _, contents := range []string{
		"",
		"0123456789abcde",    // too short
		"0123456789abcdef00", // too long
		"xxxxxxxxxxxxxxxx",   // not hex
	} {
		if _, err := ReadDescriptorFile(writeKeyFile(t, contents)); err == nil {
			t.Errorf("key file %q should have been rejected", contents)
		}
	}
}

func TestReadDescriptorFileMissing(t *testing.T) {
	if _, err := ReadDescriptorFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing key file should have been rejected")
	}
}
