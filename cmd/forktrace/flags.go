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
	"github.com/urfave/cli/v2"

	"github.com/erigontech/forktrace/capture"
	"github.com/erigontech/forktrace/fork"
	"github.com/erigontech/forktrace/simulator"
)

var (
	BinariesFlag = cli.StringSliceFlag{
		Name:  "binaries",
		Usage: "Directories searched for anvil and cast before the bundled locations and PATH",
	}

	ForkStartTimeoutFlag = cli.DurationFlag{
		Name:  "fork.start-timeout",
		Usage: "How long to wait for the fork endpoint to answer",
		Value: fork.DefaultConfig.StartTimeout,
	}

	MetricsAddrFlag = cli.StringFlag{
		Name:  "metrics.addr",
		Usage: "Serve prometheus metrics on this address, disabled when empty",
	}

	ForkURLFlag = cli.StringFlag{
		Name:     "fork-url",
		Usage:    "Upstream JSON-RPC endpoint to fork from",
		EnvVars:  []string{"FORKTRACE_FORK_URL"},
		Required: true,
	}

	BlockFlag = cli.Uint64Flag{
		Name:  "block",
		Usage: "Block to fork at, the remote head when unset",
	}

	JsonFlag = cli.BoolFlag{
		Name:  "json",
		Usage: "Print reports as JSON",
	}

	TraceModeFlag = cli.StringFlag{
		Name:  "trace.mode",
		Usage: "Call trace source: auto, cast or calltracer",
		Value: string(simulator.TraceModeAuto),
	}

	TraceTimeoutFlag = cli.DurationFlag{
		Name:  "trace.timeout",
		Usage: "Upper bound for capturing the call trace",
		Value: capture.DefaultTimeout,
	}

	SignaturesFlag = cli.StringFlag{
		Name:  "signatures",
		Usage: "YAML file with additional event signatures",
	}

	ParallelFlag = cli.IntFlag{
		Name:  "parallel",
		Usage: "Number of transactions traced concurrently",
		Value: 1,
	}

	FromFlag = cli.StringFlag{
		Name:     "from",
		Usage:    "Sender address, impersonated on the fork",
		Required: true,
	}

	ToFlag = cli.StringFlag{
		Name:  "to",
		Usage: "Recipient address, a contract creation when unset",
	}

	ValueFlag = cli.StringFlag{
		Name:  "value",
		Usage: "Value in wei",
	}

	DataFlag = cli.StringFlag{
		Name:  "data",
		Usage: "Hex encoded call data",
	}

	GasFlag = cli.Uint64Flag{
		Name:  "gas",
		Usage: "Gas limit",
	}

	GasPriceFlag = cli.StringFlag{
		Name:  "gas-price",
		Usage: "Gas price in wei",
	}
)
