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

package types

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// CallResult is the outcome of a non mutating call. Exactly one of
// ReturnData and Revert is meaningful: Revert is empty on success.
type CallResult struct {
	ReturnData hexutil.Bytes `json:"returnData,omitempty"`
	Revert     string        `json:"revert,omitempty"`
}

func (r CallResult) Reverted() bool {
	return r.Revert != ""
}

// DebugInfo is the outcome of a single simulation.
type DebugInfo struct {
	From        common.Address  `json:"from"`
	To          *common.Address `json:"to,omitempty"`
	Value       hexutil.U256    `json:"value"`
	GasEstimate hexutil.Uint64  `json:"gasEstimate"`
	TxHash      common.Hash     `json:"transactionHash"`
	CallResult  CallResult      `json:"callResult"`
	Trace       json.RawMessage `json:"trace"`
}
