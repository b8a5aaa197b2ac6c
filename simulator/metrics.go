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

import "github.com/erigontech/forktrace/metrics"

const (
	flowTrace    = "trace"
	flowSimulate = "simulate"

	outcomeOK       = "ok"
	outcomeDegraded = "degraded"
	outcomeInvalid  = "invalid"
	outcomeFailed   = "failed"
)

var (
	requestsTotal   = metrics.GetOrCreateCounterVec("forktrace_requests_total", []string{"flow", "outcome"}, "Requests by flow and outcome")
	captureFailures = metrics.GetOrCreateCounter("forktrace_trace_capture_failures_total", "Call trace captures that failed or timed out")
	teardowns       = metrics.GetOrCreateCounter("forktrace_session_teardowns_total", "Fork sessions torn down by a request")
)
