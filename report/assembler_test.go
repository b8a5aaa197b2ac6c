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
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/forktrace/calltrace"
	"github.com/erigontech/forktrace/types"
)

var (
	sender    = common.HexToAddress("0x55FE002aefF02F77364de339a1292923A15844B8")
	recipient = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	txHash    = common.HexToHash("0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060")
)

func u64(v uint64) *hexutil.Uint64 {
	h := hexutil.Uint64(v)
	return &h
}

func u256(v uint64) *hexutil.U256 {
	return (*hexutil.U256)(uint256.NewInt(v))
}

func successfulTransfer() (*types.Transaction, *types.Receipt) {
	tx := &types.Transaction{
		Hash:     txHash,
		From:     sender,
		To:       &recipient,
		Value:    u256(1_000_000_000_000_000_000),
		Nonce:    7,
		Gas:      60000,
		GasPrice: u256(2_000_000_000),
		Input:    hexutil.MustDecode("0xa9059cbb00000000000000000000000028c6c06298d514db089934071355e5743bf21d60"),
	}

	receipt := &types.Receipt{
		TxHash:            txHash,
		BlockNumber:       u64(19_000_000),
		Status:            u64(types.ReceiptStatusSuccessful),
		GasUsed:           u64(21000),
		EffectiveGasPrice: u256(1_000_000_000),
		Logs: []types.Log{
			{
				Address: recipient,
				Topics:  []common.Hash{TransferTopic, common.BytesToHash(sender.Bytes()), common.BytesToHash(recipient.Bytes())},
				Data:    hexutil.MustDecode("0x00000000000000000000000000000000000000000000000000000000000f4240"),
			},
		},
	}

	return tx, receipt
}

func TestAssembleSuccessfulTransfer(t *testing.T) {
	tx, receipt := successfulTransfer()

	r := NewAssembler(nil).Assemble(tx, receipt, nil)

	require.Equal(t, StatusSuccess, r.Overview.Status)
	require.Equal(t, txHash.Hex(), r.Overview.TransactionHash)
	require.NotNil(t, r.Overview.Block)
	require.Equal(t, uint64(19_000_000), *r.Overview.Block)

	require.Equal(t, "1.000000 ETH", r.TransactionInfo.Value)
	require.Equal(t, "0xa9059cbb", r.TransactionInfo.Function)
	require.Equal(t, "7", r.TransactionInfo.Nonce)
	require.Equal(t, sender.Hex(), r.TransactionInfo.From)
	require.NotNil(t, r.TransactionInfo.To)
	require.Equal(t, recipient.Hex(), *r.TransactionInfo.To)

	require.Equal(t, "60000", r.GasDetails.GasLimit)
	require.Equal(t, "21000", r.GasDetails.GasUsed)
	require.Equal(t, "2.00 Gwei", *r.GasDetails.GasPrice)
	require.Equal(t, "1.00 Gwei", *r.GasDetails.EffectiveGasPrice)
	require.Equal(t, "0.000021 ETH", r.GasDetails.TotalCost)

	require.Len(t, r.Events, 1)
	require.Equal(t, TransferSignature, r.Events[0].Name)
	require.Equal(t, 0, r.Events[0].Index)
	require.Len(t, r.Events[0].Topics, 3)
	require.Equal(t, "0x00000000000000000000000000000000000000000000000000000000000f4240", r.Events[0].Data)

	require.Nil(t, r.CallTrace)
}

func TestAssembleFailedWithMissingFields(t *testing.T) {
	tx := &types.Transaction{
		Hash:        txHash,
		From:        sender,
		Input:       hexutil.Bytes{0x01, 0x02},
		BlockNumber: u64(42),
	}
	receipt := &types.Receipt{
		TxHash: txHash,
		Status: u64(types.ReceiptStatusFailed),
		Logs: []types.Log{
			{Address: recipient},
			{Address: recipient, Topics: []common.Hash{common.HexToHash("0x1c411e9a96e071241c2f21f7726b17ae89e3cab4c78be50e062b03a9fffbbad1")}},
		},
	}

	r := NewAssembler(nil).Assemble(tx, receipt, nil)

	require.Equal(t, StatusFailed, r.Overview.Status)
	require.Equal(t, uint64(42), *r.Overview.Block)
	require.Nil(t, r.TransactionInfo.To)
	require.Equal(t, "0 wei", r.TransactionInfo.Value)
	require.Equal(t, "0x", r.TransactionInfo.Function)
	require.Equal(t, "Unknown", r.GasDetails.GasUsed)
	require.Equal(t, "Unknown", r.GasDetails.TotalCost)
	require.Nil(t, r.GasDetails.GasPrice)
	require.Nil(t, r.GasDetails.EffectiveGasPrice)

	require.Equal(t, UnknownEvent, r.Events[0].Name)
	require.Equal(t, "0x", r.Events[0].Data)
	require.Equal(t, "Event(0x1c411e9a...)", r.Events[1].Name)
	require.Equal(t, 1, r.Events[1].Index)
}

func TestAssembleMissingStatusIsFailure(t *testing.T) {
	tx, receipt := successfulTransfer()
	receipt.Status = nil

	r := NewAssembler(nil).Assemble(tx, receipt, nil)
	require.Equal(t, StatusFailed, r.Overview.Status)
}

func TestAssembleWithCallTrace(t *testing.T) {
	tx, receipt := successfulTransfer()
	raw := "├─ [100] A::a()\n│   └─ [50] B::b()"

	r := NewAssembler(NewSignatureRegistry()).Assemble(tx, receipt, &CallTraceInput{
		Nodes:  calltrace.Parse(raw),
		Raw:    raw,
		Source: SourceCast,
	})

	require.NotNil(t, r.CallTrace)
	require.Equal(t, SourceCast, r.CallTrace.Source)
	require.Equal(t, raw, r.CallTrace.Raw)
	require.Len(t, r.CallTrace.Calls, 2)
	require.Equal(t, 1, r.CallTrace.Calls[1].Depth)
}

func TestAssembleEmptyTraceKeepsSection(t *testing.T) {
	tx, receipt := successfulTransfer()

	r := NewAssembler(nil).Assemble(tx, receipt, &CallTraceInput{Raw: "Error: nothing to trace", Source: SourceCast})

	require.NotNil(t, r.CallTrace)
	require.NotNil(t, r.CallTrace.Calls)
	require.Empty(t, r.CallTrace.Calls)
}

func TestMarshalShape(t *testing.T) {
	tx, receipt := successfulTransfer()
	receipt.Logs = nil

	r := NewAssembler(nil).Assemble(tx, receipt, nil)

	data, err := Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.ElementsMatch(t, []string{"overview", "transactionInfo", "gasDetails", "events"}, keys(decoded))
	require.Equal(t, []any{}, decoded["events"])

	overview := decoded["overview"].(map[string]any)
	require.Equal(t, StatusSuccess, overview["status"])
	require.Equal(t, float64(19_000_000), overview["block"])

	gas := decoded["gasDetails"].(map[string]any)
	require.Equal(t, "0.000021 ETH", gas["totalCost"])

	back, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, r.GasDetails, back.GasDetails)
}

func keys(m map[string]any) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
