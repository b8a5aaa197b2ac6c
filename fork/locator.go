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
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
)

// Locator resolves the path of an external executable.
type Locator interface {
	Locate(name string) (string, error)
}

// DirLocator looks for executables in a fixed list of directories and then
// on PATH. The first match wins.
type DirLocator struct {
	Dirs    []string
	UsePath bool
}

// NewDirLocator returns a locator searching dirs, then the bundled binaries
// locations, then PATH.
func NewDirLocator(dirs ...string) *DirLocator {
	return &DirLocator{
		Dirs:    append(slices.Clone(dirs), BundledDirs()...),
		UsePath: true,
	}
}

// BundledDirs lists the directories a release ships its binaries in:
// ./binaries, ../../binaries (development checkouts) and the directory of
// the running executable (../Resources/binaries inside a macOS bundle).
func BundledDirs() []string {
	dirs := []string{"binaries", filepath.Join("..", "..", "binaries")}

	exe, err := os.Executable()
	if err != nil {
		return dirs
	}

	exeDir := filepath.Dir(exe)
	dirs = append(dirs, exeDir, filepath.Join(exeDir, "binaries"))

	if runtime.GOOS == "darwin" {
		dirs = append(dirs, filepath.Join(exeDir, "..", "Resources", "binaries"))
	}

	return dirs
}

func (l *DirLocator) Locate(name string) (string, error) {
	file := executableName(name)
	searched := make([]string, 0, len(l.Dirs)+1)

	for _, dir := range l.Dirs {
		candidate := filepath.Join(dir, file)
		searched = append(searched, candidate)

		if isExecutable(candidate) {
			return filepath.Abs(candidate)
		}
	}

	if l.UsePath {
		searched = append(searched, "$PATH")

		path, err := exec.LookPath(file)
		if err == nil {
			return path, nil
		}

		if !errors.Is(err, exec.ErrNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	return "", &BinaryNotFoundError{Name: file, Searched: searched}
}

func executableName(name string) string {
	if runtime.GOOS == "windows" && filepath.Ext(name) != ".exe" {
		return name + ".exe"
	}
	return name
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	if runtime.GOOS == "windows" {
		return true
	}

	return info.Mode().Perm()&0o111 != 0
}
