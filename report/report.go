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

// Package report assembles the human readable view of a replayed
// transaction: overview, transaction info, gas accounting, decoded events
// and the call tree.
package report

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/erigontech/forktrace/calltrace"
)

const (
	StatusSuccess = "✓ Success"
	StatusFailed  = "✗ Failed"
)

// Trace sources recorded in CallTrace.Source.
const (
	SourceCast       = "cast"
	SourceCallTracer = "callTracer"
)

type Overview struct {
	Status          string  `json:"status"`
	TransactionHash string  `json:"transactionHash"`
	Block           *uint64 `json:"block"`
}

type TransactionInfo struct {
	From     string  `json:"from"`
	To       *string `json:"to"`
	Value    string  `json:"value"`
	Function string  `json:"function"`
	Nonce    string  `json:"nonce"`
}

type GasDetails struct {
	GasLimit          string  `json:"gasLimit"`
	GasUsed           string  `json:"gasUsed"`
	GasPrice          *string `json:"gasPrice"`
	EffectiveGasPrice *string `json:"effectiveGasPrice"`
	TotalCost         string  `json:"totalCost"`
}

type Event struct {
	Index   int      `json:"index"`
	Address string   `json:"address"`
	Name    string   `json:"name"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`
}

type CallTrace struct {
	Calls  []calltrace.Node `json:"calls"`
	Raw    string           `json:"raw"`
	Source string           `json:"source"`
}

// Report is built once by an Assembler and not modified afterwards.
type Report struct {
	Overview        Overview        `json:"overview"`
	TransactionInfo TransactionInfo `json:"transactionInfo"`
	GasDetails      GasDetails      `json:"gasDetails"`
	Events          []Event         `json:"events"`
	CallTrace       *CallTrace      `json:"callTrace,omitempty"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal encodes the report as indented JSON.
func Marshal(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Unmarshal decodes a report produced by Marshal.
func Unmarshal(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
