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

type RPCMethod string

var Methods = struct {
	ETHSendTransaction       RPCMethod
	ETHCall                  RPCMethod
	ETHEstimateGas           RPCMethod
	ETHGetTransactionReceipt RPCMethod
	ETHGetTransactionByHash  RPCMethod
	DebugTraceTransaction    RPCMethod
	Web3ClientVersion        RPCMethod
}{
	ETHSendTransaction:       "eth_sendTransaction",
	ETHCall:                  "eth_call",
	ETHEstimateGas:           "eth_estimateGas",
	ETHGetTransactionReceipt: "eth_getTransactionReceipt",
	ETHGetTransactionByHash:  "eth_getTransactionByHash",
	DebugTraceTransaction:    "debug_traceTransaction",
	Web3ClientVersion:        "web3_clientVersion",
}

type BlockNumber string

func (bn BlockNumber) String() string {
	return string(bn)
}

const (
	Latest  BlockNumber = "latest"
	Pending BlockNumber = "pending"
)
