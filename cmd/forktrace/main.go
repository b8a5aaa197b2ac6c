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

// forktrace replays mainnet transactions on a local anvil fork and prints a
// readable trace report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"

	"github.com/erigontech/forktrace/fork"
	"github.com/erigontech/forktrace/metrics"
	"github.com/erigontech/forktrace/turbo/logging"
)

var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "forktrace"
	app.Usage = "Replay and simulate transactions on a local chain fork"
	app.Version = Version
	app.Flags = append([]cli.Flag{
		&BinariesFlag,
		&ForkStartTimeoutFlag,
		&MetricsAddrFlag,
	}, logging.Flags...)
	app.Commands = []*cli.Command{
		traceCommand,
		simulateCommand,
	}
	return app
}

// env is the per invocation setup shared by the commands.
type env struct {
	logger  log.Logger
	manager *fork.Manager
	locator fork.Locator
	forkCfg fork.Config
	close   func()
}

func setup(ctx *cli.Context) *env {
	logger := logging.SetupLoggerCtx("forktrace", ctx)

	locator := fork.NewDirLocator(ctx.StringSlice(BinariesFlag.Name)...)

	forkCfg := fork.DefaultConfig
	if timeout := ctx.Duration(ForkStartTimeoutFlag.Name); timeout > 0 {
		forkCfg.StartTimeout = timeout
	}

	e := &env{
		logger:  logger,
		manager: fork.NewManager(locator, logger),
		locator: locator,
		forkCfg: forkCfg,
		close:   func() {},
	}

	if addr := ctx.String(MetricsAddrFlag.Name); addr != "" {
		srv := metrics.Setup(addr, logger)
		e.close = func() {
			if err := srv.Close(); err != nil {
				logger.Debug("[metrics] close", "err", err)
			}
		}
	}

	return e
}
