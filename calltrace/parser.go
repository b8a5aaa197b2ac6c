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

// Package calltrace turns call traces into a flat, depth tagged node list.
//
// Nodes do not point at their parent. The parent of a node is the nearest
// preceding node whose depth is one less, consumers that need a tree rebuild
// it from the depths.
package calltrace

import (
	"strings"
)

const (
	MiddleChild = "├─"
	LastChild   = "└─"
	Continue    = "│"
)

// Node is one call of a trace. Trace holds the call line followed by its
// continuation lines (return values, emitted events), newline separated.
type Node struct {
	Depth int    `json:"depth"`
	Trace string `json:"trace"`
}

// Parse reads the tree drawn by `cast call --trace`. It never fails:
// malformed or truncated input produces whatever nodes could be closed.
func Parse(raw string) []Node {
	nodes := []Node{}

	var current *Node

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		marker := branchMarker(line)

		if marker < 0 {
			if current != nil {
				current.Trace += "\n" + trimmed
			}
			continue
		}

		if current != nil {
			nodes = append(nodes, *current)
		}

		current = &Node{
			Depth: strings.Count(line[:marker], Continue),
			Trace: trimmed,
		}
	}

	if current != nil {
		nodes = append(nodes, *current)
	}

	return nodes
}

// branchMarker returns the byte offset of the first branch glyph in line,
// or -1 if the line does not open a call.
func branchMarker(line string) int {
	middle := strings.Index(line, MiddleChild)
	last := strings.Index(line, LastChild)

	switch {
	case middle < 0:
		return last
	case last < 0:
		return middle
	default:
		return min(middle, last)
	}
}
