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

// Package simulator replays transactions on a forked chain and turns the
// result into reports.
//
// Every request owns one fork session. The session is stopped when the
// request reaches Done or Error, whichever sub step failed, and also when
// the request context is cancelled.
package simulator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ledgerwatch/log/v3"

	"github.com/erigontech/forktrace/calltrace"
	"github.com/erigontech/forktrace/capture"
	"github.com/erigontech/forktrace/metrics"
	"github.com/erigontech/forktrace/report"
	"github.com/erigontech/forktrace/types"
)

type TraceRequest struct {
	Hash    string
	ForkURL string
	// Block pins the fork, nil forks at the remote head.
	Block *uint64
}

// TraceResult is the outcome of a trace request. CaptureErr is set when no
// call trace could be obtained, the report is complete otherwise.
type TraceResult struct {
	Report     *report.Report
	States     []State
	CaptureErr error
}

func (r *TraceResult) State() State {
	if len(r.States) == 0 {
		return Idle
	}
	return r.States[len(r.States)-1]
}

type Tracer struct {
	sessions  SessionStarter
	dial      DialFunc
	capturer  TraceCapturer
	assembler *report.Assembler
	cfg       TraceConfig
	logger    log.Logger
}

func NewTracer(sessions SessionStarter, dial DialFunc, capturer TraceCapturer, assembler *report.Assembler, cfg TraceConfig, logger log.Logger) *Tracer {
	if assembler == nil {
		assembler = report.NewAssembler(nil)
	}
	if cfg.Mode == "" {
		cfg.Mode = DefaultTraceConfig.Mode
	}
	if cfg.CaptureTimeout <= 0 {
		cfg.CaptureTimeout = DefaultTraceConfig.CaptureTimeout
	}

	return &Tracer{
		sessions:  sessions,
		dial:      dial,
		capturer:  capturer,
		assembler: assembler,
		cfg:       cfg,
		logger:    logger,
	}
}

type traceRun struct {
	result *TraceResult
	logger log.Logger
}

func (r *traceRun) enter(state State) {
	r.result.States = append(r.result.States, state)
	r.logger.Trace("[trace] state", "state", state)
}

// fail moves the run to Error. The returned error is err.
func (r *traceRun) fail(err error) error {
	r.enter(Error)
	return err
}

// Trace replays the transaction req.Hash on a fork of req.ForkURL and
// assembles its report. The result is returned also on error, carrying the
// states the request went through.
func (t *Tracer) Trace(ctx context.Context, req TraceRequest) (*TraceResult, error) {
	run := &traceRun{
		result: &TraceResult{States: []State{Idle}},
		logger: t.logger.New("tx", req.Hash),
	}

	timer := metrics.NewHistTimer("forktrace_trace_duration_seconds")
	defer timer.PutSince()

	hash, err := parseHash(req.Hash)
	if err == nil {
		err = validateForkURL(req.ForkURL)
	}
	if err != nil {
		requestsTotal.With(flowTrace, outcomeInvalid).Inc()
		return run.result, run.fail(err)
	}

	err = t.trace(ctx, run, hash, req)

	switch {
	case err != nil:
		requestsTotal.With(flowTrace, outcomeFailed).Inc()
		run.logger.Warn("[trace] request failed", "state", run.result.State(), "err", err)
	case run.result.CaptureErr != nil:
		requestsTotal.With(flowTrace, outcomeDegraded).Inc()
	default:
		requestsTotal.With(flowTrace, outcomeOK).Inc()
	}

	return run.result, err
}

func (t *Tracer) trace(ctx context.Context, run *traceRun, hash common.Hash, req TraceRequest) error {
	cfg := t.cfg.Fork
	cfg.ForkURL = req.ForkURL
	cfg.BlockNumber = req.Block

	run.enter(SessionStarting)

	session, err := t.sessions.Start(ctx, cfg)
	if err != nil {
		return run.fail(&SetupError{Err: err})
	}

	defer t.teardown(run.logger, session)

	run.enter(SessionReady)

	client, err := t.dial(ctx, session.Endpoint())
	if err != nil {
		return run.fail(&SetupError{Err: err})
	}
	defer client.Close()

	run.enter(FetchingReceipt)

	receipt, err := client.GetTransactionReceipt(ctx, hash)
	if err != nil {
		return run.fail(err)
	}

	run.enter(FetchingTransaction)

	tx, err := client.GetTransactionByHash(ctx, hash)
	if err != nil {
		return run.fail(err)
	}

	run.enter(CapturingTrace)

	trace, err := t.captureTrace(ctx, client, session.Endpoint(), hash, tx)
	if err != nil {
		if ctx.Err() != nil {
			return run.fail(ctx.Err())
		}
		captureFailures.Inc()
		run.result.CaptureErr = err
		run.logger.Warn("[trace] call trace unavailable, continuing without it", "mode", t.cfg.Mode, "err", err)
	}

	run.enter(Assembling)

	run.result.Report = t.assembler.Assemble(tx, receipt, trace)

	run.enter(Done)

	run.logger.Info("[trace] done", "status", run.result.Report.Overview.Status, "events", len(run.result.Report.Events), "callTrace", trace != nil)
	return nil
}

// teardown stops the session. Session.Stop bounds its own wait, so it
// does not depend on the request context which may already be cancelled.
func (t *Tracer) teardown(logger log.Logger, session Session) {
	teardowns.Inc()
	if err := session.Stop(); err != nil {
		logger.Warn("[trace] failed to stop fork session", "err", err)
	}
}

func (t *Tracer) captureTrace(ctx context.Context, client DebugClient, endpoint string, hash common.Hash, tx *types.Transaction) (*report.CallTraceInput, error) {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.CaptureTimeout)
	defer cancel()

	switch t.cfg.Mode {
	case TraceModeCallTracer:
		return t.captureFrames(ctx, client, hash)
	case TraceModeCast:
		return t.captureCast(ctx, endpoint, tx)
	}

	trace, err := t.captureFrames(ctx, client, hash)
	if err == nil {
		return trace, nil
	}

	t.logger.Debug("[trace] callTracer unavailable, falling back to cast", "err", err)

	trace, castErr := t.captureCast(ctx, endpoint, tx)
	if castErr != nil {
		return nil, errors.Join(err, castErr)
	}

	return trace, nil
}

func (t *Tracer) captureFrames(ctx context.Context, client DebugClient, hash common.Hash) (*report.CallTraceInput, error) {
	frame, err := client.TraceCallFrames(ctx, hash)
	if err != nil {
		return nil, timeoutError(ctx, err)
	}

	raw, err := json.Marshal(frame)
	if err != nil {
		return nil, err
	}

	return &report.CallTraceInput{
		Nodes:  calltrace.Flatten(frame),
		Raw:    string(raw),
		Source: report.SourceCallTracer,
	}, nil
}

func (t *Tracer) captureCast(ctx context.Context, endpoint string, tx *types.Transaction) (*report.CallTraceInput, error) {
	if t.capturer == nil {
		return nil, errors.New("no cast runner configured")
	}

	out, err := t.capturer.Run(ctx, capture.Request{
		From:     tx.From,
		To:       tx.To,
		Value:    tx.ValueOrZero(),
		Input:    tx.Input,
		Endpoint: endpoint,
	})
	if err != nil {
		return nil, timeoutError(ctx, err)
	}

	return &report.CallTraceInput{
		Nodes:  calltrace.Parse(out.Stdout),
		Raw:    out.Stdout,
		Source: report.SourceCast,
	}, nil
}

// timeoutError marks err as a capture timeout when the capture deadline
// caused it.
func timeoutError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, capture.ErrTimeout) {
		return fmt.Errorf("%w: %w", capture.ErrTimeout, err)
	}
	return err
}

func parseHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, &InputError{Field: "transaction hash", Value: s, Err: err}
	}
	if len(b) != common.HashLength {
		return common.Hash{}, &InputError{Field: "transaction hash", Value: s, Err: fmt.Errorf("want %d bytes, got %d", common.HashLength, len(b))}
	}
	return common.BytesToHash(b), nil
}

func validateForkURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return &InputError{Field: "fork url", Value: s, Err: err}
	}

	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return &InputError{Field: "fork url", Value: s, Err: errors.New("want an http(s) or ws(s) url")}
	}

	if u.Host == "" {
		return &InputError{Field: "fork url", Value: s, Err: errors.New("missing host")}
	}

	return nil
}
