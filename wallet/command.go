// Copyright 2018-2020 The hw developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package wallet

import (
	"github.com/pkg/errors"

	"github.com/hwallet/hw/config"
)

// arity is the allowed positional argument count of a command. A negative
// max means no upper bound.
type arity struct {
	min, max int
}

func exactly(n int) arity        { return arity{n, n} }
func atLeast(n int) arity        { return arity{n, -1} }
func between(min, max int) arity { return arity{min, max} }

func (a arity) ok(n int) bool {
	if n < a.min {
		return false
	}
	return a.max < 0 || n <= a.max
}

type handler func(e Engine, cfg *config.Config, args []string) (Result, error)

// command pairs a usage line with the argument contract and the single
// engine operation it resolves to.
type command struct {
	usage string
	arity arity
	run   handler
}

// commands is the closed set of recognized command words. Adding a command
// is one new entry here.
var commands = map[string]command{
	"init": {"init [mnemonic]", between(0, 1),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			mnemonic := ""
			if len(args) == 1 {
				mnemonic = args[0]
			}
			return e.Create(mnemonic, cfg.Passphrase)
		}},
	"list": {"list <account>", exactly(1),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			return e.ListAddresses(args[0], 0, cfg.Count)
		}},
	"listpage": {"listpage <account> <page>", exactly(2),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			page, err := DecodeIndex(args[1])
			if err != nil {
				return nil, err
			}
			return e.ListAddresses(args[0], page, cfg.Count)
		}},
	"new": {"new <account> <label> [label...]", atLeast(2),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			return e.NewAddresses(args[0], args[1:])
		}},
	"genaddr": {"genaddr <account>", exactly(1),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			return e.GenerateAddresses(args[0], cfg.Count)
		}},
	"label": {"label <account> <index> <label>", exactly(3),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			index, err := DecodeIndex(args[1])
			if err != nil {
				return nil, err
			}
			return e.SetAddressLabel(args[0], index, args[2])
		}},
	"balance": {"balance <account>", exactly(1),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			return e.Balance(args[0])
		}},
	"balances": {"balances", exactly(0),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			return e.Balances()
		}},
	"tx": {"tx <account>", exactly(1),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			return e.ListTransactions(args[0])
		}},
	"send": {"send <account> <address> <amount>", exactly(3),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			amount, err := DecodeAmount(args[2])
			if err != nil {
				return nil, err
			}
			return e.Send(args[0], args[1], amount, cfg.TxFee(), cfg.SigHashType(), cfg.Passphrase)
		}},
	"sendmany": {"sendmany <account> <address:amount> [address:amount...]", atLeast(2),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			dests, err := DecodeDestinations(args[1:])
			if err != nil {
				return nil, err
			}
			return e.SendMany(args[0], dests, cfg.TxFee(), cfg.SigHashType(), cfg.Passphrase)
		}},
	"newacc": {"newacc <name>", exactly(1),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			return e.NewAccount(args[0])
		}},
	"newms": {"newms <name> <M> <N> [key...]", atLeast(3),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			required, err := DecodeIndex(args[1])
			if err != nil {
				return nil, err
			}
			total, err := DecodeIndex(args[2])
			if err != nil {
				return nil, err
			}
			keys, err := DecodeKeys(args[3:])
			if err != nil {
				return nil, err
			}
			return e.NewMultisigAccount(args[0], required, total, keys)
		}},
	"addkeys": {"addkeys <account> <key> [key...]", atLeast(2),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			keys, err := DecodeKeys(args[1:])
			if err != nil {
				return nil, err
			}
			return e.AddAccountKeys(args[0], keys)
		}},
	"accinfo": {"accinfo <account>", exactly(1),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			return e.AccountInfo(args[0])
		}},
	"listacc": {"listacc", exactly(0),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			return e.ListAccounts()
		}},
	"dumpkeys": {"dumpkeys <account>", exactly(1),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			return e.DumpKeys(args[0])
		}},
	"wif": {"wif <account> <index>", exactly(2),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			index, err := DecodeIndex(args[1])
			if err != nil {
				return nil, err
			}
			return e.DumpWIF(args[0], index)
		}},
	"coins": {"coins <account>", exactly(1),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			return e.Coins(args[0])
		}},
	"allcoins": {"allcoins", exactly(0),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			return e.AllCoins()
		}},
	"signtx": {"signtx <account> <tx>", exactly(2),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			tx, err := DecodeTx(args[1])
			if err != nil {
				return nil, err
			}
			return e.SignTx(args[0], tx, cfg.SigHashType(), cfg.Passphrase)
		}},
	"importtx": {"importtx <tx>", exactly(1),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			tx, err := DecodeTx(args[0])
			if err != nil {
				return nil, err
			}
			return e.ImportTx(tx)
		}},
	"removetx": {"removetx <txid>", exactly(1),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			txid, err := DecodeTxID(args[0])
			if err != nil {
				return nil, err
			}
			return e.RemoveTx(txid)
		}},
	"decodetx": {"decodetx <tx>", exactly(1),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			tx, err := DecodeTx(args[0])
			if err != nil {
				return nil, err
			}
			return e.DecodeTx(tx)
		}},
	"buildrawtx": {"buildrawtx <inputs> <outputs>", exactly(2),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			inputs, err := DecodeJSON(args[0])
			if err != nil {
				return nil, err
			}
			outputs, err := DecodeJSON(args[1])
			if err != nil {
				return nil, err
			}
			return e.BuildRawTx(inputs, outputs)
		}},
	"signrawtx": {"signrawtx <tx> <sigdata> <keys>", exactly(3),
		func(e Engine, cfg *config.Config, args []string) (Result, error) {
			tx, err := DecodeTx(args[0])
			if err != nil {
				return nil, err
			}
			sigData, err := DecodeJSON(args[1])
			if err != nil {
				return nil, err
			}
			keys, err := DecodeJSON(args[2])
			if err != nil {
				return nil, err
			}
			return e.SignRawTx(tx, sigData, keys, cfg.SigHashType())
		}},
}

// Dispatch resolves a command word, checks its argument count, decodes the
// arguments and invokes the one engine operation behind it. Every failure
// is terminal: the engine is never called once validation or decoding has
// failed.
func Dispatch(e Engine, cfg *config.Config, name string, args []string) (Result, error) {
	cmd, ok := commands[name]
	if !ok {
		return nil, errors.Errorf("invalid command %q", name)
	}
	if !cmd.arity.ok(len(args)) {
		return nil, errors.Errorf("invalid argument count, usage: hw %s", cmd.usage)
	}
	return cmd.run(e, cfg, args)
}
