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

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/erigontech/forktrace/capture"
	"github.com/erigontech/forktrace/report"
	"github.com/erigontech/forktrace/simulator"
)

var traceCommand = &cli.Command{
	Name:      "trace",
	Usage:     "Replay transactions on a fork and print their trace reports",
	ArgsUsage: "HASH...",
	Flags: []cli.Flag{
		&ForkURLFlag,
		&BlockFlag,
		&JsonFlag,
		&TraceModeFlag,
		&TraceTimeoutFlag,
		&SignaturesFlag,
		&ParallelFlag,
	},
	Action: traceAction,
}

func traceAction(ctx *cli.Context) error {
	hashes := ctx.Args().Slice()
	if len(hashes) == 0 {
		return errors.New("at least one transaction hash is required")
	}

	mode, err := simulator.ParseTraceMode(ctx.String(TraceModeFlag.Name))
	if err != nil {
		return err
	}

	e := setup(ctx)
	defer e.close()

	signatures := report.NewSignatureRegistry()
	if path := ctx.String(SignaturesFlag.Name); path != "" {
		if err := signatures.LoadSignatureFile(path); err != nil {
			return err
		}
		e.logger.Debug("[trace] loaded signatures", "file", path, "known", signatures.Len())
	}

	cfg := simulator.DefaultTraceConfig
	cfg.Mode = mode
	cfg.CaptureTimeout = ctx.Duration(TraceTimeoutFlag.Name)
	cfg.Fork.StartTimeout = e.forkCfg.StartTimeout

	tracer := simulator.NewTracer(
		simulator.ForkSessions(e.manager),
		simulator.DialDebugClient(e.logger),
		capture.NewCastRunner(e.locator, cfg.CaptureTimeout, e.logger),
		report.NewAssembler(signatures),
		cfg,
		e.logger,
	)

	var block *uint64
	if ctx.IsSet(BlockFlag.Name) {
		b := ctx.Uint64(BlockFlag.Name)
		block = &b
	}

	results := make([]*simulator.TraceResult, len(hashes))
	errs := make([]error, len(hashes))

	g, gctx := errgroup.WithContext(ctx.Context)
	g.SetLimit(max(ctx.Int(ParallelFlag.Name), 1))

	for i, hash := range hashes {
		g.Go(func() error {
			// failed requests are reported after all of them finished
			results[i], errs[i] = tracer.Trace(gctx, simulator.TraceRequest{
				Hash:    hash,
				ForkURL: ctx.String(ForkURLFlag.Name),
				Block:   block,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return printResults(ctx.App.Writer, ctx.App.ErrWriter, hashes, results, errs, ctx.Bool(JsonFlag.Name))
}

// printResults writes reports to w and per transaction failures to errW.
func printResults(w, errW io.Writer, hashes []string, results []*simulator.TraceResult, errs []error, asJson bool) error {
	var failed int

	for i, result := range results {
		if errs[i] != nil {
			failed++
			fmt.Fprintf(errW, "%s: %v\n", hashes[i], errs[i])
			continue
		}

		if result.CaptureErr != nil {
			fmt.Fprintf(errW, "%s: call trace unavailable: %v\n", hashes[i], result.CaptureErr)
		}

		if asJson {
			data, err := report.Marshal(result.Report)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w, string(data)); err != nil {
				return err
			}
			continue
		}

		if err := report.Render(w, result.Report); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d transactions failed", failed, len(results))
	}

	return nil
}
