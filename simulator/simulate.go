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

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/ledgerwatch/log/v3"

	"github.com/erigontech/forktrace/types"
)

type SimulateRequest struct {
	Tx      types.TransactionSpec
	ForkURL string
	Block   *uint64
}

// Simulator executes hypothetical transactions on a fork. The sender is
// impersonated, no signature is needed.
type Simulator struct {
	sessions SessionStarter
	dial     DialFunc
	cfg      SimulateConfig
	logger   log.Logger
}

func NewSimulator(sessions SessionStarter, dial DialFunc, cfg SimulateConfig, logger log.Logger) *Simulator {
	return &Simulator{
		sessions: sessions,
		dial:     dial,
		cfg:      cfg,
		logger:   logger,
	}
}

// Simulate calls and estimates req.Tx against the pinned state, then sends
// it and returns its default struct log trace. The fork is stopped before
// Simulate returns.
func (s *Simulator) Simulate(ctx context.Context, req SimulateRequest) (info *types.DebugInfo, err error) {
	if err := validateForkURL(req.ForkURL); err != nil {
		requestsTotal.With(flowSimulate, outcomeInvalid).Inc()
		return nil, err
	}

	defer func() {
		if err != nil {
			requestsTotal.With(flowSimulate, outcomeFailed).Inc()
			s.logger.Warn("[simulate] request failed", "from", req.Tx.From, "to", req.Tx.To, "err", err)
		} else {
			requestsTotal.With(flowSimulate, outcomeOK).Inc()
		}
	}()

	cfg := s.cfg.Fork
	cfg.ForkURL = req.ForkURL
	cfg.BlockNumber = req.Block

	session, err := s.sessions.Start(ctx, cfg)
	if err != nil {
		return nil, &SetupError{Err: err}
	}

	defer func() {
		teardowns.Inc()
		if stopErr := session.Stop(); stopErr != nil {
			s.logger.Warn("[simulate] failed to stop fork session", "err", stopErr)
		}
	}()

	client, err := s.dial(ctx, session.Endpoint())
	if err != nil {
		return nil, &SetupError{Err: err}
	}
	defer client.Close()

	callResult, err := client.Call(ctx, req.Tx)
	if err != nil {
		return nil, err
	}

	gas, err := client.EstimateGas(ctx, req.Tx)
	if err != nil {
		return nil, fmt.Errorf("can't estimate gas: %w", err)
	}

	hash, err := client.SendTransaction(ctx, req.Tx)
	if err != nil {
		return nil, err
	}

	trace, err := client.TraceTransaction(ctx, hash, nil)
	if err != nil {
		return nil, err
	}

	value := new(uint256.Int)
	if req.Tx.Value != nil {
		value.Set(req.Tx.Value)
	}

	s.logger.Info("[simulate] done", "tx", hash, "gas", gas, "reverted", callResult.Reverted())

	return &types.DebugInfo{
		From:        req.Tx.From,
		To:          req.Tx.To,
		Value:       hexutil.U256(*value),
		GasEstimate: hexutil.Uint64(gas),
		TxHash:      hash,
		CallResult:  callResult,
		Trace:       trace,
	}, nil
}
