// Copyright 2025 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

package fork

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeExecutable(t *testing.T, dir, name string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, executableName(name))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), mode))
	return path
}

func TestDirLocatorFirstMatchWins(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeExecutable(t, second, "cast", 0o755)
	want := writeExecutable(t, first, "cast", 0o755)

	path, err := (&DirLocator{Dirs: []string{first, second}}).Locate("cast")

	require.NoError(t, err)
	require.Equal(t, want, path)
}

func TestDirLocatorSkipsNonExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no executable bit on windows")
	}

	first, second := t.TempDir(), t.TempDir()
	writeExecutable(t, first, "anvil", 0o644)
	want := writeExecutable(t, second, "anvil", 0o755)

	path, err := (&DirLocator{Dirs: []string{first, second}}).Locate("anvil")

	require.NoError(t, err)
	require.Equal(t, want, path)
}

func TestDirLocatorNotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := (&DirLocator{Dirs: []string{dir}}).Locate("anvil")

	require.ErrorIs(t, err, ErrBinaryNotFound)

	var notFound *BinaryNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, []string{filepath.Join(dir, executableName("anvil"))}, notFound.Searched)
}

func TestDirLocatorPath(t *testing.T) {
	dir := t.TempDir()
	want := writeExecutable(t, dir, "forktrace-locator-test", 0o755)
	t.Setenv("PATH", dir)

	path, err := (&DirLocator{UsePath: true}).Locate("forktrace-locator-test")

	require.NoError(t, err)
	require.Equal(t, want, path)
}

func TestBundledDirs(t *testing.T) {
	dirs := BundledDirs()

	require.Equal(t, "binaries", dirs[0])
	require.Equal(t, filepath.Join("..", "..", "binaries"), dirs[1])
	require.GreaterOrEqual(t, len(dirs), 2)
}

func TestNewDirLocatorCopiesDirs(t *testing.T) {
	dirs := make([]string, 1, 8)
	dirs[0] = "custom"

	l := NewDirLocator(dirs...)
	_ = append(dirs, "other")

	require.Equal(t, "custom", l.Dirs[0])
	require.Equal(t, BundledDirs(), l.Dirs[1:])
}
