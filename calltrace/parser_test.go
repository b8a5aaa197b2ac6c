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

package calltrace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const castTrace = `Traces:
  [48866] 0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48::transfer(0x28C6c06298d514Db089934071355E5743bf21d60, 1000000 [1e6])
    ├─ [41577] 0x43506849D7C04F9138D1A2050bbF3A0c054402dd::transfer(0x28C6c06298d514Db089934071355E5743bf21d60, 1000000 [1e6]) [delegatecall]
    │   ├─ [2553] 0x0000000000000000000000000000000000000001::isBlacklisted(0x55FE002aefF02F77364de339a1292923A15844B8) [staticcall]
    │   │   └─ ← [Return] false
    │   ├─ emit Transfer(from: 0x55FE002aefF02F77364de339a1292923A15844B8, to: 0x28C6c06298d514Db089934071355E5743bf21d60, value: 1000000 [1e6])
    │   └─ ← [Return] true
    └─ ← [Return] true


Transaction successfully executed.
Gas used: 70066
`

func TestParseEmpty(t *testing.T) {
	require.Empty(t, Parse(""))
	require.NotNil(t, Parse(""))
	require.Empty(t, Parse("\n\n   \n"))
}

func TestParseContinuationOnly(t *testing.T) {
	raw := strings.Repeat("Gas used: 21000\n  ← [Return] 0x\nsomething else\n", 50)
	require.Empty(t, Parse(raw))
}

func TestParseThreeLines(t *testing.T) {
	raw := "├─ [100] A::a()\n│   └─ [50] B::b()\n        ← [Return] 0x01"

	nodes := Parse(raw)

	require.Equal(t, []Node{
		{Depth: 0, Trace: "├─ [100] A::a()"},
		{Depth: 1, Trace: "│   └─ [50] B::b()\n← [Return] 0x01"},
	}, nodes)
}

func TestParseCastOutput(t *testing.T) {
	nodes := Parse(castTrace)

	depths := make([]int, len(nodes))
	for i, node := range nodes {
		depths[i] = node.Depth
	}

	require.Equal(t, []int{0, 1, 2, 1, 1, 0}, depths)
	require.True(t, strings.HasPrefix(nodes[0].Trace, "├─ [41577] 0x43506849D7C04F9138D1A2050bbF3A0c054402dd::transfer"))
	require.Equal(t, "│   │   └─ ← [Return] false", nodes[2].Trace)

	// the summary after the tree is continuation content of the last node
	require.Equal(t, "└─ ← [Return] true\nTransaction successfully executed.\nGas used: 70066", nodes[5].Trace)
}

func TestParseDepthCountsOnlyBeforeMarker(t *testing.T) {
	nodes := Parse("│   │   ├─ call(│ inside args │)")

	require.Len(t, nodes, 1)
	require.Equal(t, 2, nodes[0].Depth)
}

func TestParseFirstMarkerWins(t *testing.T) {
	nodes := Parse("│   └─ name(\"├─\")")

	require.Len(t, nodes, 1)
	require.Equal(t, 1, nodes[0].Depth)
}

func TestParseTruncated(t *testing.T) {
	truncated := castTrace[:strings.Index(castTrace, "emit Transfer")+10]

	nodes := Parse(truncated)

	require.Len(t, nodes, 4)
	require.Equal(t, "│   ├─ emit Trans", nodes[3].Trace)
}

func TestParseReparseKeepsDepths(t *testing.T) {
	for _, raw := range []string{castTrace, "├─ a\n│   ├─ b\n│   │   └─ c\n            more\n│   └─ d\n└─ e"} {
		first := Parse(raw)
		second := Parse(render(first))

		require.Equal(t, depthsOf(first), depthsOf(second))
		require.Equal(t, first, second)
	}
}

// render indents node text back into a tree. The glyphs that carry the
// depth are part of the node text, only the leading whitespace is lost.
func render(nodes []Node) string {
	var sb strings.Builder

	for _, node := range nodes {
		for _, line := range strings.Split(node.Trace, "\n") {
			sb.WriteString("    ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func depthsOf(nodes []Node) []int {
	depths := make([]int, len(nodes))
	for i, node := range nodes {
		depths[i] = node.Depth
	}
	return depths
}
