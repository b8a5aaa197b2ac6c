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
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// TransactionSpec describes a transaction to simulate on a fork. It is not
// modified after it has been handed to the debug client.
type TransactionSpec struct {
	From     common.Address
	To       *common.Address
	Value    *uint256.Int
	Data     []byte
	Gas      *uint64
	GasPrice *uint256.Int
}

// CallArgs is the JSON-RPC transaction object accepted by eth_call,
// eth_estimateGas and eth_sendTransaction.
type CallArgs struct {
	From     *common.Address `json:"from"`
	To       *common.Address `json:"to,omitempty"`
	Gas      *hexutil.Uint64 `json:"gas,omitempty"`
	GasPrice *hexutil.U256   `json:"gasPrice,omitempty"`
	Value    *hexutil.U256   `json:"value,omitempty"`
	Input    *hexutil.Bytes  `json:"input,omitempty"`
}

func (tx TransactionSpec) ToCallArgs() CallArgs {
	from := tx.From
	args := CallArgs{
		From: &from,
		To:   tx.To,
	}

	if tx.Gas != nil {
		gas := hexutil.Uint64(*tx.Gas)
		args.Gas = &gas
	}

	if tx.GasPrice != nil {
		args.GasPrice = (*hexutil.U256)(tx.GasPrice.Clone())
	}

	if tx.Value != nil {
		args.Value = (*hexutil.U256)(tx.Value.Clone())
	}

	if len(tx.Data) > 0 {
		data := hexutil.Bytes(common.CopyBytes(tx.Data))
		args.Input = &data
	}

	return args
}

// Transaction is the subset of eth_getTransactionByHash fields the report
// needs. Optional fields stay nil when the node omits them.
type Transaction struct {
	Hash        common.Hash     `json:"hash"`
	From        common.Address  `json:"from"`
	To          *common.Address `json:"to"`
	Value       *hexutil.U256   `json:"value"`
	Nonce       hexutil.Uint64  `json:"nonce"`
	Gas         hexutil.Uint64  `json:"gas"`
	GasPrice    *hexutil.U256   `json:"gasPrice"`
	Input       hexutil.Bytes   `json:"input"`
	BlockNumber *hexutil.Uint64 `json:"blockNumber"`
}

// Selector returns the 4 byte function selector of the input, or nil for
// plain transfers and truncated inputs.
func (tx *Transaction) Selector() []byte {
	if len(tx.Input) < 4 {
		return nil
	}
	return tx.Input[:4]
}

// ValueOrZero returns the transferred value, zero if the node omitted it.
func (tx *Transaction) ValueOrZero() *uint256.Int {
	if tx.Value == nil {
		return new(uint256.Int)
	}
	return (*uint256.Int)(tx.Value)
}
