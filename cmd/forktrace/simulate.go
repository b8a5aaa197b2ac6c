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

package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"

	"github.com/erigontech/forktrace/simulator"
	"github.com/erigontech/forktrace/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var simulateCommand = &cli.Command{
	Name:  "simulate",
	Usage: "Execute a transaction on a fork as an impersonated sender and print its debug info",
	Flags: []cli.Flag{
		&ForkURLFlag,
		&BlockFlag,
		&FromFlag,
		&ToFlag,
		&ValueFlag,
		&DataFlag,
		&GasFlag,
		&GasPriceFlag,
	},
	Action: simulateAction,
}

func simulateAction(ctx *cli.Context) error {
	tx, err := transactionSpec(ctx)
	if err != nil {
		return err
	}

	e := setup(ctx)
	defer e.close()

	cfg := simulator.DefaultSimulateConfig
	cfg.Fork.StartTimeout = e.forkCfg.StartTimeout

	req := simulator.SimulateRequest{
		Tx:      tx,
		ForkURL: ctx.String(ForkURLFlag.Name),
	}
	if ctx.IsSet(BlockFlag.Name) {
		b := ctx.Uint64(BlockFlag.Name)
		req.Block = &b
	}

	info, err := simulator.NewSimulator(simulator.ForkSessions(e.manager), simulator.DialDebugClient(e.logger), cfg, e.logger).
		Simulate(ctx.Context, req)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}

func transactionSpec(ctx *cli.Context) (types.TransactionSpec, error) {
	var tx types.TransactionSpec

	from, err := parseAddress("from", ctx.String(FromFlag.Name))
	if err != nil {
		return tx, err
	}
	tx.From = from

	if ctx.IsSet(ToFlag.Name) {
		to, err := parseAddress("to", ctx.String(ToFlag.Name))
		if err != nil {
			return tx, err
		}
		tx.To = &to
	}

	if tx.Value, err = parseWei("value", ctx.String(ValueFlag.Name)); err != nil {
		return tx, err
	}

	if tx.GasPrice, err = parseWei("gas price", ctx.String(GasPriceFlag.Name)); err != nil {
		return tx, err
	}

	if s := ctx.String(DataFlag.Name); s != "" {
		if tx.Data, err = hexutil.Decode(s); err != nil {
			return tx, &simulator.InputError{Field: "data", Value: s, Err: err}
		}
	}

	if ctx.IsSet(GasFlag.Name) {
		gas := ctx.Uint64(GasFlag.Name)
		tx.Gas = &gas
	}

	return tx, nil
}

func parseAddress(field, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, &simulator.InputError{Field: field + " address", Value: s}
	}
	return common.HexToAddress(s), nil
}

// parseWei accepts decimal or 0x prefixed amounts. Empty means unset.
func parseWei(field, s string) (*uint256.Int, error) {
	if s == "" {
		return nil, nil
	}

	var (
		v   *uint256.Int
		err error
	)
	if has0xPrefix(s) {
		v, err = uint256.FromHex(s)
	} else {
		v, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return nil, &simulator.InputError{Field: field, Value: s, Err: err}
	}

	return v, nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
