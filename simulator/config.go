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
	"fmt"
	"time"

	"github.com/erigontech/forktrace/capture"
	"github.com/erigontech/forktrace/fork"
)

// TraceMode selects how the call trace of a replayed transaction is captured.
type TraceMode string

const (
	// TraceModeAuto asks the fork for a callTracer trace and falls back to cast.
	TraceModeAuto       TraceMode = "auto"
	TraceModeCast       TraceMode = "cast"
	TraceModeCallTracer TraceMode = "calltracer"
)

func ParseTraceMode(s string) (TraceMode, error) {
	switch mode := TraceMode(s); mode {
	case TraceModeAuto, TraceModeCast, TraceModeCallTracer:
		return mode, nil
	case "":
		return TraceModeAuto, nil
	default:
		return "", fmt.Errorf("unknown trace mode %q (want %s, %s or %s)", s, TraceModeAuto, TraceModeCast, TraceModeCallTracer)
	}
}

type TraceConfig struct {
	Mode           TraceMode
	CaptureTimeout time.Duration
	// Fork holds the session settings. ForkURL and BlockNumber are taken
	// from each request.
	Fork fork.Config
}

// traceForkArgs enable step tracing on anvil and lift the contract size
// limit so replays of large deployments do not fail.
var traceForkArgs = []string{"--steps-tracing", "--code-size-limit", "41943040"}

var DefaultTraceConfig = TraceConfig{
	Mode:           TraceModeAuto,
	CaptureTimeout: capture.DefaultTimeout,
	Fork: fork.Config{
		StartTimeout: fork.DefaultConfig.StartTimeout,
		StopTimeout:  fork.DefaultConfig.StopTimeout,
		ExtraArgs:    traceForkArgs,
	},
}

type SimulateConfig struct {
	Fork fork.Config
}

var DefaultSimulateConfig = SimulateConfig{
	Fork: fork.Config{
		StartTimeout: fork.DefaultConfig.StartTimeout,
		StopTimeout:  fork.DefaultConfig.StopTimeout,
		ExtraArgs:    []string{"--auto-impersonate"},
	},
}
