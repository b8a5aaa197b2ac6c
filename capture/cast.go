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

// Package capture obtains text call traces by running `cast call --trace`
// against a fork endpoint.
package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/ledgerwatch/log/v3"

	"github.com/erigontech/forktrace/fork"
)

const (
	CastBinary     = "cast"
	DefaultTimeout = 30 * time.Second
)

var ErrTimeout = errors.New("trace capture timed out")

// Request describes the call to re-execute on the fork.
type Request struct {
	From     common.Address
	To       *common.Address
	Value    *uint256.Int
	Input    []byte
	Endpoint string
}

// Args returns the cast command line for r.
func (r Request) Args() []string {
	value := "0"
	if r.Value != nil {
		value = r.Value.Dec()
	}

	input := hexutil.Encode(r.Input)

	args := []string{"call"}
	if r.To != nil {
		args = append(args, r.To.Hex(), input)
	} else {
		args = append(args, "--create", input)
	}

	return append(args,
		"--from", r.From.Hex(),
		"--value", value,
		"--trace",
		"--rpc-url", r.Endpoint,
	)
}

type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ExitError is returned when cast ran but exited with a non-zero status.
type ExitError struct {
	Output Output
	Err    error
}

func (e *ExitError) Error() string {
	if e.Output.Stderr != "" {
		return fmt.Sprintf("cast exited with code %d: %s", e.Output.ExitCode, lastLine(e.Output.Stderr))
	}
	return fmt.Sprintf("cast exited with code %d", e.Output.ExitCode)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

type CastRunner struct {
	locator fork.Locator
	timeout time.Duration
	logger  log.Logger
}

func NewCastRunner(locator fork.Locator, timeout time.Duration, logger log.Logger) *CastRunner {
	if locator == nil {
		locator = fork.NewDirLocator()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CastRunner{locator: locator, timeout: timeout, logger: logger}
}

// Run executes cast for req. Stdout and stderr are captured in full, the
// command is killed once the runner timeout elapses.
func (r *CastRunner) Run(ctx context.Context, req Request) (*Output, error) {
	path, err := r.locator.Locate(CastBinary)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(runCtx, path, req.Args()...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	r.logger.Debug("[capture] running cast", "from", req.From, "to", req.To, "value", req.Value, "input", len(req.Input))

	start := time.Now()
	runErr := cmd.Run()

	out := &Output{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: -1}
	if cmd.ProcessState != nil {
		out.ExitCode = cmd.ProcessState.ExitCode()
	}

	if runErr == nil {
		r.logger.Debug("[capture] cast finished", "took", time.Since(start), "stdout", len(out.Stdout))
		return out, nil
	}

	if runCtx.Err() != nil {
		if ctx.Err() != nil {
			return out, ctx.Err()
		}
		return out, fmt.Errorf("%w after %s", ErrTimeout, r.timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return out, &ExitError{Output: *out, Err: runErr}
	}

	return out, fmt.Errorf("can't run cast: %w", runErr)
}

func lastLine(s string) string {
	lines := bytes.Split(bytes.TrimSpace([]byte(s)), []byte("\n"))
	return string(lines[len(lines)-1])
}
