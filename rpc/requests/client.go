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

// Package requests is the JSON-RPC client used against a fork session.
package requests

import (
	"context"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/ledgerwatch/log/v3"
)

// DebugClient issues the eth_ and debug_ calls needed to replay and trace a
// transaction. Every error it returns is an *RPCError.
type DebugClient struct {
	client   *rpc.Client
	endpoint string
	logger   log.Logger
}

func NewDebugClient(ctx context.Context, endpoint string, logger log.Logger) (*DebugClient, error) {
	client, err := rpc.DialContext(ctx, endpoint)
	if err != nil {
		return nil, &RPCError{Method: "dial", Err: err}
	}

	return &DebugClient{
		client:   client,
		endpoint: endpoint,
		logger:   logger,
	}, nil
}

func (c *DebugClient) Endpoint() string {
	return c.endpoint
}

func (c *DebugClient) Close() {
	c.client.Close()
}

func (c *DebugClient) rpcCall(ctx context.Context, result interface{}, method RPCMethod, args ...interface{}) error {
	if err := c.client.CallContext(ctx, result, string(method), args...); err != nil {
		c.logger.Debug("[rpc] call failed", "method", method, "err", err)
		return &RPCError{Method: method, Err: err}
	}

	return nil
}
