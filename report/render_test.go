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
	"bytes"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/forktrace/calltrace"
	"github.com/erigontech/forktrace/types"
)

func TestRender(t *testing.T) {
	tx, receipt := successfulTransfer()
	raw := "├─ [100] A::a()\n│   └─ [50] B::b()\n        ← [Return] 0x01"

	r := NewAssembler(nil).Assemble(tx, receipt, &CallTraceInput{Nodes: calltrace.Parse(raw), Raw: raw, Source: SourceCast})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r))
	out := buf.String()

	require.Contains(t, out, "TRANSACTION TRACE")
	require.Contains(t, out, "📋 OVERVIEW\n   Status: ✓ Success\n")
	require.Contains(t, out, "   Block: 19000000\n")
	require.Contains(t, out, "   Value: 1.000000 ETH\n")
	require.Contains(t, out, "   Function: 0xa9059cbb\n")
	require.Contains(t, out, "   Total Cost: 0.000021 ETH\n")
	require.Contains(t, out, "📢 EVENTS (1)\n   • Transfer(address,address,uint256) at "+recipient.Hex()+"\n")
	require.Contains(t, out, "🔍 CALL TRACE (cast)\n")
	require.Contains(t, out, "└─ ├─ [100] A::a()\n")
	require.Contains(t, out, "   └─ │   └─ [50] B::b()\n      ← [Return] 0x01\n")
}

func TestRenderTruncatesEvents(t *testing.T) {
	tx, receipt := successfulTransfer()
	receipt.Logs = make([]types.Log, 8)
	for i := range receipt.Logs {
		receipt.Logs[i] = types.Log{Address: recipient, Topics: []common.Hash{ApprovalTopic}}
	}

	r := NewAssembler(nil).Assemble(tx, receipt, nil)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r))
	out := buf.String()

	require.Contains(t, out, "📢 EVENTS (8)\n")
	require.Equal(t, MaxRenderedEvents, strings.Count(out, "• Approval"))
	require.Contains(t, out, "   ... and 3 more\n")
	require.NotContains(t, out, "CALL TRACE")
}

func TestRenderWithoutEventsOrBlock(t *testing.T) {
	tx, receipt := successfulTransfer()
	receipt.Logs = nil
	receipt.BlockNumber = nil

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, NewAssembler(nil).Assemble(tx, receipt, nil)))

	require.NotContains(t, buf.String(), "EVENTS")
	require.Contains(t, buf.String(), "   Block: pending\n")
}
