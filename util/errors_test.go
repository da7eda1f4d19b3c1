/*
 * errors_test.go - Tests the util package's error helpers.
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

package util

import (
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestInvalidLengthError(t *testing.T) {
	err := InvalidLengthError("key descriptor", 8, 5)
	expected := "invalid input: expected key descriptor of length 8, actual length was 5"
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err, expected)
	}
}

func TestUnderlyingError(t *testing.T) {
	pathErr := &os.PathError{Op: "open", Path: "/nowhere", Err: unix.ENOENT}
	if UnderlyingError(pathErr) != unix.ENOENT {
		t.Error("PathError should unwrap to its errno")
	}

	syscallErr := os.NewSyscallError("access", unix.EACCES)
	if UnderlyingError(syscallErr) != unix.EACCES {
		t.Error("SyscallError should unwrap to its errno")
	}

	plain := unix.EINVAL
	if UnderlyingError(plain) != plain {
		t.Error("errors without a wrapper should be returned unchanged")
	}
}
