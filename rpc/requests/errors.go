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

package requests

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the node answers null for a transaction or
// receipt lookup.
var ErrNotFound = errors.New("not found")

// RPCError is the failure of a single JSON-RPC call.
type RPCError struct {
	Method RPCMethod
	Err    error
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s rpc failed: %v", e.Method, e.Err)
}

func (e *RPCError) Unwrap() error {
	return e.Err
}
