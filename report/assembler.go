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

package report

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/erigontech/forktrace/calltrace"
	"github.com/erigontech/forktrace/common/units"
	"github.com/erigontech/forktrace/types"
)

// CallTraceInput is the captured call trace handed to the assembler.
type CallTraceInput struct {
	Nodes  []calltrace.Node
	Raw    string
	Source string
}

type Assembler struct {
	Signatures *SignatureRegistry
}

func NewAssembler(signatures *SignatureRegistry) *Assembler {
	if signatures == nil {
		signatures = NewSignatureRegistry()
	}
	return &Assembler{Signatures: signatures}
}

// Assemble builds the report for a mined transaction. trace may be nil when
// no call trace could be captured, the report then has no call trace section.
func (a *Assembler) Assemble(tx *types.Transaction, receipt *types.Receipt, trace *CallTraceInput) *Report {
	signatures := a.Signatures
	if signatures == nil {
		signatures = NewSignatureRegistry()
	}

	r := &Report{
		Overview:        overview(tx, receipt),
		TransactionInfo: transactionInfo(tx),
		GasDetails:      gasDetails(tx, receipt),
		Events:          events(signatures, receipt.Logs),
	}

	if trace != nil {
		nodes := trace.Nodes
		if nodes == nil {
			nodes = []calltrace.Node{}
		}
		r.CallTrace = &CallTrace{Calls: nodes, Raw: trace.Raw, Source: trace.Source}
	}

	return r
}

func overview(tx *types.Transaction, receipt *types.Receipt) Overview {
	o := Overview{
		Status:          StatusFailed,
		TransactionHash: tx.Hash.Hex(),
	}

	if receipt.Successful() {
		o.Status = StatusSuccess
	}

	switch {
	case receipt.BlockNumber != nil:
		block := uint64(*receipt.BlockNumber)
		o.Block = &block
	case tx.BlockNumber != nil:
		block := uint64(*tx.BlockNumber)
		o.Block = &block
	}

	return o
}

func transactionInfo(tx *types.Transaction) TransactionInfo {
	info := TransactionInfo{
		From:     tx.From.Hex(),
		Value:    units.FormatEther(tx.ValueOrZero()),
		Function: "0x",
		Nonce:    strconv.FormatUint(uint64(tx.Nonce), 10),
	}

	if tx.To != nil {
		to := tx.To.Hex()
		info.To = &to
	}

	if selector := tx.Selector(); selector != nil {
		info.Function = hexutil.Encode(selector)
	}

	return info
}

func gasDetails(tx *types.Transaction, receipt *types.Receipt) GasDetails {
	gas := GasDetails{
		GasLimit:  strconv.FormatUint(uint64(tx.Gas), 10),
		GasUsed:   units.Unknown,
		TotalCost: units.GasCost(receipt.GasUsedOrNil(), receipt.EffectiveGasPriceOrNil()),
	}

	if used := receipt.GasUsedOrNil(); used != nil {
		gas.GasUsed = strconv.FormatUint(*used, 10)
	}

	if tx.GasPrice != nil {
		price := units.FormatGwei((*uint256.Int)(tx.GasPrice))
		gas.GasPrice = &price
	}

	if effective := receipt.EffectiveGasPriceOrNil(); effective != nil {
		price := units.FormatGwei(effective)
		gas.EffectiveGasPrice = &price
	}

	return gas
}

func events(signatures *SignatureRegistry, logs []types.Log) []Event {
	result := make([]Event, 0, len(logs))

	for i, l := range logs {
		topics := make([]string, len(l.Topics))
		for j, topic := range l.Topics {
			topics[j] = topic.Hex()
		}

		result = append(result, Event{
			Index:   i,
			Address: l.Address.Hex(),
			Name:    signatures.Name(l.Topics),
			Topics:  topics,
			Data:    hexutil.Encode(l.Data),
		})
	}

	return result
}
