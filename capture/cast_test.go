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

package capture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/ledgerwatch/log/v3"
	"github.com/stretchr/testify/require"

	"github.com/erigontech/forktrace/fork"
)

const envFakeCast = "FORKTRACE_FAKE_CAST"

const fakeTrace = `Traces:
  [21000] 0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48::transfer()
    └─ ← [Return] true
`

func TestMain(m *testing.M) {
	if mode := os.Getenv(envFakeCast); mode != "" {
		os.Exit(runFakeCast(mode, os.Args[1:]))
	}

	os.Exit(m.Run())
}

func runFakeCast(mode string, args []string) int {
	switch mode {
	case "ok":
		fmt.Print(fakeTrace)
		fmt.Fprintln(os.Stderr, strings.Join(args, " "))
		return 0
	case "fail":
		fmt.Fprintln(os.Stderr, "Error:\nserver returned an error response: error code 3: execution reverted")
		return 2
	case "hang":
		time.Sleep(time.Hour)
	}
	return 0
}

func fakeRunner(t *testing.T, mode string, timeout time.Duration) *CastRunner {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake cast is a shell script")
	}

	exe, err := os.Executable()
	require.NoError(t, err)

	dir := t.TempDir()
	script := fmt.Sprintf("#!/bin/sh\nexec %q \"$@\"\n", exe)
	require.NoError(t, os.WriteFile(filepath.Join(dir, CastBinary), []byte(script), 0o755))

	t.Setenv(envFakeCast, mode)

	return NewCastRunner(&fork.DirLocator{Dirs: []string{dir}}, timeout, log.New())
}

var (
	from = common.HexToAddress("0x55FE002aefF02F77364de339a1292923A15844B8")
	to   = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
)

func TestRequestArgs(t *testing.T) {
	req := Request{
		From:     from,
		To:       &to,
		Value:    uint256.NewInt(1_000_000_000_000_000_000),
		Input:    []byte{0xa9, 0x05, 0x9c, 0xbb},
		Endpoint: "http://127.0.0.1:8545",
	}

	require.Equal(t, []string{
		"call", to.Hex(), "0xa9059cbb",
		"--from", from.Hex(),
		"--value", "1000000000000000000",
		"--trace",
		"--rpc-url", "http://127.0.0.1:8545",
	}, req.Args())

	create := Request{From: from, Input: []byte{0x60, 0x80}, Endpoint: "http://127.0.0.1:8545"}
	require.Equal(t, []string{
		"call", "--create", "0x6080",
		"--from", from.Hex(),
		"--value", "0",
		"--trace",
		"--rpc-url", "http://127.0.0.1:8545",
	}, create.Args())
}

func TestRun(t *testing.T) {
	runner := fakeRunner(t, "ok", time.Minute)

	out, err := runner.Run(context.Background(), Request{From: from, To: &to, Endpoint: "http://127.0.0.1:1"})

	require.NoError(t, err)
	require.Equal(t, 0, out.ExitCode)
	require.Equal(t, fakeTrace, out.Stdout)
	require.Contains(t, out.Stderr, "--trace --rpc-url http://127.0.0.1:1")
}

func TestRunNonZeroExit(t *testing.T) {
	runner := fakeRunner(t, "fail", time.Minute)

	out, err := runner.Run(context.Background(), Request{From: from, To: &to})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Output.ExitCode)
	require.Equal(t, 2, out.ExitCode)
	require.Contains(t, err.Error(), "execution reverted")
}

func TestRunTimeout(t *testing.T) {
	runner := fakeRunner(t, "hang", 200*time.Millisecond)

	start := time.Now()
	_, err := runner.Run(context.Background(), Request{From: from, To: &to})

	require.ErrorIs(t, err, ErrTimeout)
	require.Less(t, time.Since(start), 10*time.Second)
}

func TestRunCancelled(t *testing.T) {
	runner := fakeRunner(t, "hang", time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := runner.Run(ctx, Request{From: from, To: &to})

	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotErrorIs(t, err, ErrTimeout)
}

func TestRunMissingBinary(t *testing.T) {
	runner := NewCastRunner(&fork.DirLocator{Dirs: []string{t.TempDir()}}, time.Second, log.New())

	_, err := runner.Run(context.Background(), Request{From: from, To: &to})

	require.ErrorIs(t, err, fork.ErrBinaryNotFound)
}
