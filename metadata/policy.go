/*
 * policy.go - Functions for getting and setting ext4 encryption policies on an
 * open directory handle.
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

// Package metadata contains the encryption policy structure exchanged with
// the kernel. The structure's layout and the two ioctl request codes are a
// fixed contract with the filesystem driver, which parses the record
// positionally; both come from golang.org/x/sys/unix so they stay in sync
// with the kernel headers.
package metadata

import (
	"encoding/hex"
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/google/e4crypt/util"
)

// KeyDescriptorLen is the length of a policy's master key descriptor in
// bytes. The descriptor is opaque to this package; it correlates to a key
// held in the kernel keyring by whoever provisioned it.
const KeyDescriptorLen = unix.FS_KEY_DESCRIPTOR_SIZE

// HexDescriptorLen is the length of a key descriptor rendered as hex.
const HexDescriptorLen = 2 * KeyDescriptorLen

// Encryption specific errors
var (
	ErrEncryptionNotSupported = errors.New("filesystem encryption is not supported")
	ErrEncryptionDisabled     = errors.New("filesystem encryption has been disabled in the kernel config")
	ErrNotEncrypted           = errors.New("file or directory not encrypted")
	ErrEncrypted              = errors.New("file or directory already encrypted")
	ErrUnrecognizedPolicy     = errors.New("existing policy does not match a recognized configuration")
)

// NewPolicy returns a version 0 encryption policy record using the only
// supported modes (AES-256-XTS for contents, AES-256-CTS for filenames), no
// flags, and the given 8-byte master key descriptor. The descriptor is
// copied verbatim and never interpreted.
func NewPolicy(descriptor []byte) (*unix.FscryptPolicyV1, error) {
	if len(descriptor) != KeyDescriptorLen {
		return nil, util.InvalidLengthError("key descriptor", KeyDescriptorLen, len(descriptor))
	}

	policy := &unix.FscryptPolicyV1{
		Version:                   0, // Version must always be zero
		Contents_encryption_mode:  unix.FS_ENCRYPTION_MODE_AES_256_XTS,
		Filenames_encryption_mode: unix.FS_ENCRYPTION_MODE_AES_256_CTS,
		Flags:                     0,
	}
	copy(policy.Master_key_descriptor[:], descriptor)
	return policy, nil
}

// Recognized returns true if policy is exactly the configuration NewPolicy
// produces: version 0, AES-256-XTS contents, AES-256-CTS filenames, and no
// flags. Any other combination was written by a different tool or kernel
// feature and is never partially accepted.
func Recognized(policy *unix.FscryptPolicyV1) bool {
	return policy.Version == 0 &&
		policy.Contents_encryption_mode == unix.FS_ENCRYPTION_MODE_AES_256_XTS &&
		policy.Filenames_encryption_mode == unix.FS_ENCRYPTION_MODE_AES_256_CTS &&
		policy.Flags == 0
}

// DescriptorHex renders a key descriptor as lowercase hex for diagnostics.
func DescriptorHex(descriptor []byte) string {
	return hex.EncodeToString(descriptor)
}

// SetPolicy installs policy on the open directory handle. The directory must
// be empty; the kernel refuses to change the policy of a directory that
// already contains files.
func SetPolicy(file *os.File, policy *unix.FscryptPolicyV1) error {
	return policyIoctl(file, unix.FS_IOC_SET_ENCRYPTION_POLICY, policy)
}

// GetPolicy retrieves the policy record for the open directory handle. The
// record is returned unvalidated; callers decide with Recognized whether
// they understand it.
func GetPolicy(file *os.File) (*unix.FscryptPolicyV1, error) {
	var policy unix.FscryptPolicyV1
	if err := policyIoctl(file, unix.FS_IOC_GET_ENCRYPTION_POLICY, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

// policyIoctl issues one of the encryption policy ioctls on an open directory
// handle. The returned errno values can sometimes be unclear, so we translate
// them into encryption specific errors.
func policyIoctl(file *os.File, request uintptr, policy *unix.FscryptPolicyV1) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, file.Fd(), request, uintptr(unsafe.Pointer(policy)))
	switch errno {
	case 0:
		return nil
	case unix.ENOTTY:
		return ErrEncryptionNotSupported
	case unix.EOPNOTSUPP:
		return ErrEncryptionDisabled
	case unix.ENODATA, unix.ENOENT:
		// ENOENT was returned instead of ENODATA on some filesystems before v4.11.
		return ErrNotEncrypted
	case unix.EEXIST:
		// EINVAL was returned instead of EEXIST on some filesystems before v4.11.
		return ErrEncrypted
	default:
		return errno
	}
}
