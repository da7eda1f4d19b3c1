/*
 * policy.go - The high level policy operations: set a policy on an empty
 * directory, read the policy back, and ensure a directory carries an
 * expected policy.
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

// Package actions composes the metadata and filesystem packages into the
// operations callers actually use. Each operation validates the caller's
// descriptor before touching the filesystem and releases the directory
// handle on every exit path.
package actions

import (
	"bytes"
	"log"

	"github.com/pkg/errors"

	"github.com/google/e4crypt/filesystem"
	"github.com/google/e4crypt/metadata"
	"github.com/google/e4crypt/util"
)

// ErrPolicyConflict indicates a directory already carries a recognized
// policy whose key descriptor differs from the expected one. This is never
// resolved automatically; overriding it would orphan the existing data.
var ErrPolicyConflict = errors.New("directory encrypted with different policy")

// SetPolicy encrypts the directory with an AES-256-XTS/AES-256-CTS policy
// using the 8-byte master key descriptor. The directory must be writable and
// must contain no entries other than an optional "lost+found". Setting a
// policy is one-way: once files exist under the directory the kernel refuses
// to change it.
func SetPolicy(directory string, descriptor []byte) error {
	policy, err := metadata.NewPolicy(descriptor)
	if err != nil {
		return err
	}
	if err := filesystem.CheckWritable(directory); err != nil {
		return err
	}

	file, err := filesystem.OpenDir(directory)
	if err != nil {
		return err
	}
	defer file.Close()

	empty, err := filesystem.IsEmptyDir(file)
	if err != nil {
		return errors.Wrapf(err, "directory %q", directory)
	}
	if !empty {
		return errors.Wrapf(filesystem.ErrNotEmpty, "cannot set policy on %q", directory)
	}

	if err := metadata.SetPolicy(file, policy); err != nil {
		return errors.Wrapf(err, "setting policy on %q", directory)
	}
	log.Printf("policy for %q set to %s", directory, metadata.DescriptorHex(descriptor))
	return nil
}

// GetPolicy reads the policy of the directory and copies its master key
// descriptor into the 8-byte buffer descriptor. If the directory has no
// policy, the error wraps metadata.ErrNotEncrypted and descriptor is left
// untouched; this is the expected outcome for unencrypted directories. A
// policy with unexpected version, modes, or flags fails with
// metadata.ErrUnrecognizedPolicy and no descriptor is returned.
func GetPolicy(directory string, descriptor []byte) error {
	if len(descriptor) != metadata.KeyDescriptorLen {
		return util.InvalidLengthError("descriptor buffer", metadata.KeyDescriptorLen, len(descriptor))
	}
	if err := filesystem.CheckWritable(directory); err != nil {
		return err
	}

	file, err := filesystem.OpenDir(directory)
	if err != nil {
		return err
	}
	defer file.Close()

	policy, err := metadata.GetPolicy(file)
	if err != nil {
		// Common case, most directories have no policy set.
		log.Printf("no policy read from %q: %v", directory, err)
		return errors.Wrapf(err, "getting policy for %q", directory)
	}
	if !metadata.Recognized(policy) {
		return errors.Wrapf(metadata.ErrUnrecognizedPolicy, "directory %q", directory)
	}

	copy(descriptor, policy.Master_key_descriptor[:])
	return nil
}

// EnsurePolicy makes sure the directory is encrypted with the policy given
// by the 8-byte master key descriptor, setting it if the directory has no
// recognized policy yet. EnsurePolicy is idempotent; repeating it with the
// same descriptor succeeds without mutating anything. A recognized policy
// with a different descriptor fails with ErrPolicyConflict and leaves the
// directory unchanged.
func EnsurePolicy(directory string, descriptor []byte) error {
	if len(descriptor) != metadata.KeyDescriptorLen {
		return util.InvalidLengthError("key descriptor", metadata.KeyDescriptorLen, len(descriptor))
	}

	existing := make([]byte, metadata.KeyDescriptorLen)
	if err := GetPolicy(directory, existing); err == nil {
		if !bytes.Equal(existing, descriptor) {
			return errors.Wrapf(ErrPolicyConflict, "found policy %s at %q, expected %s",
				metadata.DescriptorHex(existing), directory, metadata.DescriptorHex(descriptor))
		}
		log.Printf("found policy %s at %q which matches expected value",
			metadata.DescriptorHex(existing), directory)
		return nil
	}

	return SetPolicy(directory, descriptor)
}
