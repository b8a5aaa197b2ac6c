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

// Package units converts wei amounts into ether and gwei display strings.
//
// All conversions are done on 256-bit integers, there is no floating point
// involved, so the rounding at the last displayed digit is exact
// (round half up).
package units

import (
	"fmt"

	"github.com/holiman/uint256"
)

const (
	Wei   = 1
	GWei  = 1e9
	Ether = 1e18

	// EtherDecimals is the number of fractional digits shown for ether amounts.
	EtherDecimals = 6
	// GweiDecimals is the number of fractional digits shown for gwei amounts.
	GweiDecimals = 2

	Unknown = "Unknown"
)

var (
	// MicroEther is the smallest amount displayed in ether, anything below
	// is shown as raw wei so a tiny amount never reads as "0.000000 ETH".
	MicroEther = uint256.NewInt(1e12)

	microEtherHalf = uint256.NewInt(1e12 / 2)
	centiGwei      = uint256.NewInt(1e7)
	centiGweiHalf  = uint256.NewInt(1e7 / 2)
	million        = uint256.NewInt(1e6)
	hundred        = uint256.NewInt(100)
)

// FormatEther renders wei as ether with 6 decimals ("1.000000 ETH"). Amounts
// below 1e-6 ether, zero included, are rendered as "<n> wei".
func FormatEther(wei *uint256.Int) string {
	if wei == nil {
		wei = new(uint256.Int)
	}

	if wei.Lt(MicroEther) {
		return wei.Dec() + " wei"
	}

	micro := roundDiv(wei, MicroEther, microEtherHalf)
	whole, frac := new(uint256.Int).DivMod(micro, million, new(uint256.Int))

	return fmt.Sprintf("%s.%06d ETH", whole.Dec(), frac.Uint64())
}

// FormatGwei renders wei as gwei with 2 decimals ("21.00 Gwei").
func FormatGwei(wei *uint256.Int) string {
	if wei == nil {
		wei = new(uint256.Int)
	}

	centi := roundDiv(wei, centiGwei, centiGweiHalf)
	whole, frac := new(uint256.Int).DivMod(centi, hundred, new(uint256.Int))

	return fmt.Sprintf("%s.%02d Gwei", whole.Dec(), frac.Uint64())
}

// GasCost multiplies gas used by the effective gas price and renders the
// product as ether. If either operand is missing the cost is Unknown.
func GasCost(gasUsed *uint64, gasPrice *uint256.Int) string {
	if gasUsed == nil || gasPrice == nil {
		return Unknown
	}

	cost, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(*gasUsed), gasPrice)
	if overflow {
		cost.SetAllOne()
	}

	return FormatEther(cost)
}

// roundDiv returns (x + half) / d without losing the carry when x is close
// to the top of the 256-bit range.
func roundDiv(x, d, half *uint256.Int) *uint256.Int {
	q, r := new(uint256.Int).DivMod(x, d, new(uint256.Int))
	if !r.Lt(half) {
		q.AddUint64(q, 1)
	}
	return q
}
