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
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/erigontech/forktrace/calltrace"
)

const CallTracer = "callTracer"

// TraceConfig holds extra parameters to trace functions.
type TraceConfig struct {
	DisableStorage   bool            `json:"disableStorage,omitempty"`
	DisableStack     bool            `json:"disableStack,omitempty"`
	EnableMemory     bool            `json:"enableMemory,omitempty"`
	EnableReturnData bool            `json:"enableReturnData,omitempty"`
	Tracer           *string         `json:"tracer,omitempty"`
	Timeout          *string         `json:"timeout,omitempty"`
	TracerConfig     json.RawMessage `json:"tracerConfig,omitempty"`
}

// CallTracerConfig returns the config selecting the callTracer with logs.
func CallTracerConfig() *TraceConfig {
	tracer := CallTracer
	return &TraceConfig{
		Tracer:       &tracer,
		TracerConfig: json.RawMessage(`{"withLog":true}`),
	}
}

// TraceTransaction returns the raw debug_traceTransaction result. A nil
// config selects the node's default struct logger.
func (c *DebugClient) TraceTransaction(ctx context.Context, hash common.Hash, config *TraceConfig) (json.RawMessage, error) {
	var result json.RawMessage

	args := []interface{}{hash}
	if config != nil {
		args = append(args, config)
	}

	if err := c.rpcCall(ctx, &result, Methods.DebugTraceTransaction, args...); err != nil {
		return nil, err
	}

	if len(result) == 0 || string(result) == "null" {
		return nil, &RPCError{Method: Methods.DebugTraceTransaction, Err: fmt.Errorf("trace %s: %w", hash, ErrNotFound)}
	}

	return result, nil
}

// TraceCallFrames traces hash with the callTracer and decodes the frame tree.
func (c *DebugClient) TraceCallFrames(ctx context.Context, hash common.Hash) (*calltrace.Frame, error) {
	raw, err := c.TraceTransaction(ctx, hash, CallTracerConfig())
	if err != nil {
		return nil, err
	}

	var frame calltrace.Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, &RPCError{Method: Methods.DebugTraceTransaction, Err: fmt.Errorf("can't decode call frames: %w", err)}
	}

	return &frame, nil
}
