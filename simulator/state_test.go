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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateString(t *testing.T) {
	require.Equal(t, "Idle", Idle.String())
	require.Equal(t, "CapturingTrace", CapturingTrace.String())
	require.Equal(t, "Error", Error.String())
	require.Equal(t, "Unknown", State(42).String())
}

func TestStateTerminal(t *testing.T) {
	for s := Idle; s <= Error; s++ {
		require.Equal(t, s == Done || s == Error, s.Terminal(), s.String())
	}
}

func TestParseTraceMode(t *testing.T) {
	tests := []struct {
		in   string
		want TraceMode
		err  bool
	}{
		{in: "", want: TraceModeAuto},
		{in: "auto", want: TraceModeAuto},
		{in: "cast", want: TraceModeCast},
		{in: "calltracer", want: TraceModeCallTracer},
		{in: "CAST", err: true},
		{in: "prestate", err: true},
	}

	for _, tt := range tests {
		mode, err := ParseTraceMode(tt.in)
		if tt.err {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, mode)
	}
}

func TestNewTracerDefaults(t *testing.T) {
	tracer := NewTracer(nil, nil, nil, nil, TraceConfig{}, nil)
	require.Equal(t, TraceModeAuto, tracer.cfg.Mode)
	require.Equal(t, DefaultTraceConfig.CaptureTimeout, tracer.cfg.CaptureTimeout)
	require.NotNil(t, tracer.assembler)
}
