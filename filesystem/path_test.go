/*
 * path_test.go - Tests for the directory precondition checks.
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

package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func TestCheckWritable(t *testing.T) {
	if err := CheckWritable(t.TempDir()); err != nil {
		t.Error(err)
	}
}

func TestCheckWritableReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("access checks do not apply to root")
	}
	directory := t.TempDir()
	if err := os.Chmod(directory, 0500); err != nil {
		t.Fatal(err)
	}

	err := CheckWritable(directory)
	if errors.Cause(err) != ErrNoWriteAccess {
		t.Errorf("got %v, want ErrNoWriteAccess", err)
	}
}

func TestOpenDir(t *testing.T) {
	file, err := OpenDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	file.Close()
}

func TestOpenDirRefusesSymlink(t *testing.T) {
	directory := t.TempDir()
	link := filepath.Join(directory, "link")
	if err := os.Symlink(directory, link); err != nil {
		t.Fatal(err)
	}

	if file, err := OpenDir(link); err == nil {
		file.Close()
		t.Error("opening a symlink to a directory should fail")
	} else if errors.Cause(err) != unix.ELOOP {
		t.Errorf("got %v, want ELOOP", err)
	}
}

func TestOpenDirRefusesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("data"), 0600); err != nil {
		t.Fatal(err)
	}

	if file, err := OpenDir(path); err == nil {
		file.Close()
		t.Error("opening a regular file as a directory should fail")
	}
}

func TestOpenDirMissing(t *testing.T) {
	if file, err := OpenDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		file.Close()
		t.Error("opening a missing directory should fail")
	}
}

func checkEmpty(t *testing.T, directory string, want bool) {
	t.Helper()
	file, err := OpenDir(directory)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	empty, err := IsEmptyDir(file)
	if err != nil {
		t.Fatal(err)
	}
	if empty != want {
		t.Errorf("IsEmptyDir(%q) = %v, want %v", directory, empty, want)
	}
}

func TestIsEmptyDir(t *testing.T) {
	checkEmpty(t, t.TempDir(), true)
}

func TestIsEmptyDirWithFile(t *testing.T) {
	directory := t.TempDir()
	if err := os.WriteFile(filepath.Join(directory, "file"), []byte("data"), 0600); err != nil {
		t.Fatal(err)
	}
	checkEmpty(t, directory, false)
}

func TestIsEmptyDirSkipsLostFound(t *testing.T) {
	directory := t.TempDir()
	if err := os.Mkdir(filepath.Join(directory, "lost+found"), 0700); err != nil {
		t.Fatal(err)
	}
	checkEmpty(t, directory, true)
}

func TestIsEmptyDirLostFoundPlusEntry(t *testing.T) {
	directory := t.TempDir()
	if err := os.Mkdir(filepath.Join(directory, "lost+found"), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(directory, "file"), []byte("data"), 0600); err != nil {
		t.Fatal(err)
	}
	checkEmpty(t, directory, false)
}
