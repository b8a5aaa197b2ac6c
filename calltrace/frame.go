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

package calltrace

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"

	"github.com/erigontech/forktrace/common/units"
)

// Frame is one call frame as returned by debug_traceTransaction with the
// callTracer.
type Frame struct {
	Type         string          `json:"type"`
	From         common.Address  `json:"from"`
	To           *common.Address `json:"to,omitempty"`
	Value        *hexutil.U256   `json:"value,omitempty"`
	Gas          hexutil.Uint64  `json:"gas"`
	GasUsed      hexutil.Uint64  `json:"gasUsed"`
	Input        hexutil.Bytes   `json:"input,omitempty"`
	Output       hexutil.Bytes   `json:"output,omitempty"`
	Error        string          `json:"error,omitempty"`
	RevertReason string          `json:"revertReason,omitempty"`
	Calls        []Frame         `json:"calls,omitempty"`
	Logs         []FrameLog      `json:"logs,omitempty"`
}

type FrameLog struct {
	Address common.Address `json:"address"`
	Topics  []common.Hash  `json:"topics"`
	Data    hexutil.Bytes  `json:"data"`
}

// Flatten walks the frame depth first and produces the same node shape
// Parse produces for text traces. The root frame is at depth 0.
func Flatten(root *Frame) []Node {
	nodes := []Node{}
	if root == nil {
		return nodes
	}
	return flatten(nodes, root, 0)
}

func flatten(nodes []Node, frame *Frame, depth int) []Node {
	nodes = append(nodes, Node{Depth: depth, Trace: frame.describe()})

	for i := range frame.Calls {
		nodes = flatten(nodes, &frame.Calls[i], depth+1)
	}

	return nodes
}

func (f *Frame) describe() string {
	var sb strings.Builder

	typ := strings.ToUpper(f.Type)

	target := "<unknown>"
	if f.To != nil {
		target = f.To.Hex()
	}

	fmt.Fprintf(&sb, "[%d] ", uint64(f.GasUsed))

	switch typ {
	case "CREATE", "CREATE2":
		fmt.Fprintf(&sb, "→ new %s", target)
	default:
		fmt.Fprintf(&sb, "%s::%s", target, callSignature(f.Input))
	}

	if f.Value != nil && !(*uint256.Int)(f.Value).IsZero() {
		fmt.Fprintf(&sb, "{value: %s}", units.FormatEther((*uint256.Int)(f.Value)))
	}

	switch typ {
	case "STATICCALL":
		sb.WriteString(" [staticcall]")
	case "DELEGATECALL":
		sb.WriteString(" [delegatecall]")
	case "CALLCODE":
		sb.WriteString(" [callcode]")
	}

	for _, l := range f.Logs {
		sb.WriteString("\nemit ")
		sb.WriteString(l.describe())
	}

	sb.WriteString("\n← ")
	sb.WriteString(f.outcome())

	return sb.String()
}

func (f *Frame) outcome() string {
	switch {
	case f.Error != "" && f.RevertReason != "":
		return "[Revert] " + f.RevertReason
	case f.Error != "":
		return "[Revert] " + f.Error
	case len(f.Output) > 0:
		return "[Return] " + f.Output.String()
	default:
		return "[Stop]"
	}
}

func (l *FrameLog) describe() string {
	if len(l.Topics) == 0 {
		return fmt.Sprintf("anonymous(data: %s)", l.Data)
	}
	return fmt.Sprintf("%s(topics: %d, data: %s)", l.Topics[0].Hex(), len(l.Topics), l.Data)
}

func callSignature(input []byte) string {
	if len(input) < 4 {
		return "fallback()"
	}
	return fmt.Sprintf("%s(%s)", hexutil.Encode(input[:4]), hexutil.Encode(input[4:]))
}
