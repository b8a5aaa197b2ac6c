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

package fork

import "github.com/erigontech/forktrace/metrics"

var (
	sessionsStarted      = metrics.GetOrCreateCounter("forktrace_fork_sessions_started_total", "Fork sessions that became ready")
	sessionsStopped      = metrics.GetOrCreateCounter("forktrace_fork_sessions_stopped_total", "Fork sessions stopped")
	sessionStartFailures = metrics.GetOrCreateCounter("forktrace_fork_session_start_failures_total", "Fork sessions that never became ready")
)

func startupTimer() *metrics.HistTimer {
	return metrics.NewHistTimer("forktrace_fork_startup_seconds")
}
