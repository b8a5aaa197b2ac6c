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
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/erigontech/forktrace/types"
)

// revertErrorCode is the JSON-RPC error code nodes use for reverted calls.
const revertErrorCode = 3

func (c *DebugClient) SendTransaction(ctx context.Context, tx types.TransactionSpec) (common.Hash, error) {
	var result common.Hash

	if err := c.rpcCall(ctx, &result, Methods.ETHSendTransaction, tx.ToCallArgs()); err != nil {
		return common.Hash{}, err
	}

	if result == (common.Hash{}) {
		return common.Hash{}, &RPCError{
			Method: Methods.ETHSendTransaction,
			Err:    fmt.Errorf("from: %s: returned a zero transaction hash", tx.From),
		}
	}

	return result, nil
}

// Call executes tx without committing it. A reverted execution is not an
// error: its reason is returned in CallResult.Revert.
func (c *DebugClient) Call(ctx context.Context, tx types.TransactionSpec) (types.CallResult, error) {
	var result hexutil.Bytes

	err := c.rpcCall(ctx, &result, Methods.ETHCall, tx.ToCallArgs(), Latest)
	if err == nil {
		return types.CallResult{ReturnData: result}, nil
	}

	if reason, ok := revertReason(err); ok {
		c.logger.Debug("[rpc] call reverted", "reason", reason)
		return types.CallResult{Revert: reason}, nil
	}

	return types.CallResult{}, err
}

func (c *DebugClient) EstimateGas(ctx context.Context, tx types.TransactionSpec) (uint64, error) {
	var result hexutil.Uint64

	if err := c.rpcCall(ctx, &result, Methods.ETHEstimateGas, tx.ToCallArgs()); err != nil {
		return 0, err
	}

	return uint64(result), nil
}

func (c *DebugClient) GetTransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	var result *types.Receipt

	if err := c.rpcCall(ctx, &result, Methods.ETHGetTransactionReceipt, hash); err != nil {
		return nil, err
	}

	if result == nil {
		return nil, &RPCError{Method: Methods.ETHGetTransactionReceipt, Err: fmt.Errorf("receipt %s: %w", hash, ErrNotFound)}
	}

	return result, nil
}

func (c *DebugClient) GetTransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, error) {
	var result *types.Transaction

	if err := c.rpcCall(ctx, &result, Methods.ETHGetTransactionByHash, hash); err != nil {
		return nil, err
	}

	if result == nil {
		return nil, &RPCError{Method: Methods.ETHGetTransactionByHash, Err: fmt.Errorf("transaction %s: %w", hash, ErrNotFound)}
	}

	return result, nil
}

// revertReason reports whether err is an execution revert and decodes its
// Error(string) payload when there is one.
func revertReason(err error) (string, bool) {
	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) {
		return "", false
	}

	message := rpcErr.Error()
	if rpcErr.ErrorCode() != revertErrorCode && !strings.Contains(message, "revert") {
		return "", false
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if data, ok := dataErr.ErrorData().(string); ok {
			if raw, err := hexutil.Decode(data); err == nil && len(raw) > 0 {
				if reason, err := abi.UnpackRevert(raw); err == nil {
					return reason, true
				}
				return fmt.Sprintf("%s: %s", message, data), true
			}
		}
	}

	return message, true
}
