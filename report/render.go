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

package report

import (
	"fmt"
	"io"
	"strings"
)

// MaxRenderedEvents is how many events Render lists before summarising.
const MaxRenderedEvents = 5

const banner = `
╔══════════════════════════════════════════════════════════════╗
║                      TRANSACTION TRACE                       ║
╚══════════════════════════════════════════════════════════════╝

`

// Render writes the console view of r to w.
func Render(w io.Writer, r *Report) error {
	var sb strings.Builder

	sb.WriteString(banner)

	sb.WriteString("📋 OVERVIEW\n")
	fmt.Fprintf(&sb, "   Status: %s\n", r.Overview.Status)
	fmt.Fprintf(&sb, "   TX Hash: %s\n", r.Overview.TransactionHash)
	if r.Overview.Block != nil {
		fmt.Fprintf(&sb, "   Block: %d\n\n", *r.Overview.Block)
	} else {
		sb.WriteString("   Block: pending\n\n")
	}

	sb.WriteString("💼 TRANSACTION INFO\n")
	fmt.Fprintf(&sb, "   From: %s\n", r.TransactionInfo.From)
	if r.TransactionInfo.To != nil {
		fmt.Fprintf(&sb, "   To: %s\n", *r.TransactionInfo.To)
	}
	fmt.Fprintf(&sb, "   Value: %s\n", r.TransactionInfo.Value)
	fmt.Fprintf(&sb, "   Function: %s\n\n", r.TransactionInfo.Function)

	sb.WriteString("⛽ GAS DETAILS\n")
	fmt.Fprintf(&sb, "   Limit: %s\n", r.GasDetails.GasLimit)
	fmt.Fprintf(&sb, "   Used: %s\n", r.GasDetails.GasUsed)
	if r.GasDetails.GasPrice != nil {
		fmt.Fprintf(&sb, "   Gas Price: %s\n", *r.GasDetails.GasPrice)
	}
	if r.GasDetails.EffectiveGasPrice != nil {
		fmt.Fprintf(&sb, "   Effective Gas Price: %s\n", *r.GasDetails.EffectiveGasPrice)
	}
	fmt.Fprintf(&sb, "   Total Cost: %s\n\n", r.GasDetails.TotalCost)

	if len(r.Events) > 0 {
		fmt.Fprintf(&sb, "📢 EVENTS (%d)\n", len(r.Events))
		for _, event := range r.Events[:min(len(r.Events), MaxRenderedEvents)] {
			fmt.Fprintf(&sb, "   • %s at %s\n", event.Name, event.Address)
		}
		if len(r.Events) > MaxRenderedEvents {
			fmt.Fprintf(&sb, "   ... and %d more\n", len(r.Events)-MaxRenderedEvents)
		}
		sb.WriteString("\n")
	}

	if r.CallTrace != nil {
		fmt.Fprintf(&sb, "🔍 CALL TRACE (%s)\n", r.CallTrace.Source)
		for _, call := range r.CallTrace.Calls {
			indent := strings.Repeat("   ", call.Depth)
			lines := strings.Split(call.Trace, "\n")
			fmt.Fprintf(&sb, "%s└─ %s\n", indent, lines[0])
			for _, line := range lines[1:] {
				fmt.Fprintf(&sb, "%s   %s\n", indent, line)
			}
		}
	}

	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
