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

package simulator

// State is a step of a trace request.
type State int

const (
	Idle State = iota
	SessionStarting
	SessionReady
	FetchingReceipt
	FetchingTransaction
	CapturingTrace
	Assembling
	Done
	Error
)

var stateNames = [...]string{
	Idle:                "Idle",
	SessionStarting:     "SessionStarting",
	SessionReady:        "SessionReady",
	FetchingReceipt:     "FetchingReceipt",
	FetchingTransaction: "FetchingTransaction",
	CapturingTrace:      "CapturingTrace",
	Assembling:          "Assembling",
	Done:                "Done",
	Error:               "Error",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

func (s State) Terminal() bool {
	return s == Done || s == Error
}
