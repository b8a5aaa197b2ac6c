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

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/ledgerwatch/log/v3"
)

const outputTailLines = 20

// processOutput forwards the fork process output to the logger line by
// line, keeps the last lines for error reports and signals the listening line.
type processOutput struct {
	logger log.Logger

	listening     chan struct{}
	listeningOnce sync.Once

	mu   sync.Mutex
	tail []string
}

func newProcessOutput(logger log.Logger) *processOutput {
	return &processOutput{
		logger:    logger,
		listening: make(chan struct{}),
	}
}

func (o *processOutput) writer(stream string) io.Writer {
	return &lineWriter{stream: stream, output: o}
}

func (o *processOutput) line(stream, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	o.mu.Lock()
	o.tail = append(o.tail, line)
	if len(o.tail) > outputTailLines {
		o.tail = o.tail[len(o.tail)-outputTailLines:]
	}
	o.mu.Unlock()

	if stream == "stderr" {
		o.logger.Warn("[fork] anvil", "stream", stream, "line", line)
	} else {
		o.logger.Trace("[fork] anvil", "stream", stream, "line", line)
	}

	if strings.Contains(line, ListeningMarker) {
		o.listeningOnce.Do(func() { close(o.listening) })
	}
}

// Tail returns the last lines printed by the process.
func (o *processOutput) Tail() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return strings.Join(o.tail, "\n")
}

type lineWriter struct {
	stream string
	output *processOutput
	buf    []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.output.line(w.stream, strings.TrimRight(string(w.buf[:i]), "\r"))
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}
