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

package simulator

//go:generate mockgen -typed=true -source=./interfaces.go -destination=./interfaces_mock.go -package=simulator

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ledgerwatch/log/v3"

	"github.com/erigontech/forktrace/calltrace"
	"github.com/erigontech/forktrace/capture"
	"github.com/erigontech/forktrace/fork"
	"github.com/erigontech/forktrace/rpc/requests"
	"github.com/erigontech/forktrace/types"
)

type Session interface {
	Endpoint() string
	Stop() error
}

type SessionStarter interface {
	Start(ctx context.Context, cfg fork.Config) (Session, error)
}

type DebugClient interface {
	SendTransaction(ctx context.Context, tx types.TransactionSpec) (common.Hash, error)
	Call(ctx context.Context, tx types.TransactionSpec) (types.CallResult, error)
	EstimateGas(ctx context.Context, tx types.TransactionSpec) (uint64, error)
	GetTransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	GetTransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, error)
	TraceTransaction(ctx context.Context, hash common.Hash, config *requests.TraceConfig) (json.RawMessage, error)
	TraceCallFrames(ctx context.Context, hash common.Hash) (*calltrace.Frame, error)
	Close()
}

type TraceCapturer interface {
	Run(ctx context.Context, req capture.Request) (*capture.Output, error)
}

// DialFunc connects a debug client to a session endpoint.
type DialFunc func(ctx context.Context, endpoint string) (DebugClient, error)

// DialDebugClient returns a DialFunc creating JSON-RPC debug clients.
func DialDebugClient(logger log.Logger) DialFunc {
	return func(ctx context.Context, endpoint string) (DebugClient, error) {
		client, err := requests.NewDebugClient(ctx, endpoint, logger)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

var _ SessionStarter = forkSessions{}

type forkSessions struct {
	manager *fork.Manager
}

// ForkSessions adapts a fork manager to SessionStarter.
func ForkSessions(manager *fork.Manager) SessionStarter {
	return forkSessions{manager: manager}
}

func (f forkSessions) Start(ctx context.Context, cfg fork.Config) (Session, error) {
	session, err := f.manager.Start(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return session, nil
}
