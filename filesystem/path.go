/*
 * path.go - Checks run against a directory before its policy can be changed.
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

// Package filesystem contains the directory precondition checks that guard
// setting an encryption policy. Setting a policy is one-way, so each check
// fails fast before anything is mutated.
package filesystem

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/google/e4crypt/util"
)

// lostFoundName is the reserved recovery directory created by mkfs/fsck. Its
// presence does not count against a directory being empty.
const lostFoundName = "lost+found"

var (
	// ErrNoWriteAccess indicates the caller lacks write permission on a
	// directory whose policy they tried to read or change.
	ErrNoWriteAccess = errors.New("no write access to directory")
	// ErrNotEmpty indicates a directory contains entries other than the
	// reserved "lost+found" entry, so a policy can no longer be set on it.
	ErrNotEmpty = errors.New("directory is not empty")
)

// CheckWritable probes for write access to the directory at path. The probe
// uses the access permission bits, it never attempts a mutation.
func CheckWritable(path string) error {
	if err := unix.Access(path, unix.W_OK); err != nil {
		return errors.Wrapf(ErrNoWriteAccess, "directory %q: %v", path, err)
	}
	return nil
}

// OpenDir opens path as a directory, refusing to follow symbolic links. The
// handle is close-on-exec. The caller must close the handle on every path.
func OpenDir(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_RDONLY|unix.O_DIRECTORY|unix.O_NOFOLLOW|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.Wrapf(util.UnderlyingError(err), "opening directory %q", path)
	}
	return file, nil
}

// IsEmptyDir returns true if the open directory contains no entries other
// than "lost+found". The "." and ".." entries are never reported by
// Readdirnames, so any reported name except "lost+found" makes the directory
// non-empty.
func IsEmptyDir(file *os.File) (bool, error) {
	names, err := file.Readdirnames(0)
	if err != nil {
		return false, errors.Wrap(util.UnderlyingError(err), "listing directory")
	}
	for _, name := range names {
		if name != lostFoundName {
			return false, nil
		}
	}
	return true, nil
}
