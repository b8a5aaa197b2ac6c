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
	"fmt"
	"strings"
)

var (
	ErrBinaryNotFound      = errors.New("fork binary not found")
	ErrEndpointUnavailable = errors.New("fork endpoint unavailable")
)

type BinaryNotFoundError struct {
	Name     string
	Searched []string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("%s not found (searched: %s)", e.Name, strings.Join(e.Searched, ", "))
}

func (e *BinaryNotFoundError) Is(target error) bool {
	return target == ErrBinaryNotFound
}

// SpawnError is returned when the fork process could not be started or
// exited before its endpoint became ready.
type SpawnError struct {
	Reason string
	Output string
	Err    error
}

func (e *SpawnError) Error() string {
	var sb strings.Builder
	sb.WriteString("fork spawn failed: ")
	sb.WriteString(e.Reason)

	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	if e.Output != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Output)
	}

	return sb.String()
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
