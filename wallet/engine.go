// Copyright 2018-2020 The hw developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package wallet

import (
	"encoding/json"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcutil/hdkeychain"
)

// Result is the generic structured value returned by a wallet engine
// operation. A nil Result means the operation produced no output.
type Result interface{}

// Destination is one address:amount pair of a sendmany command.
type Destination struct {
	Address string         `json:"address"`
	Amount  btcutil.Amount `json:"amount"`
}

// Engine is the wallet engine behind the command line: it owns key
// derivation, transaction construction and signing, multisig logic and the
// persistent account store. Each command resolves to exactly one of these
// operations. All wallet semantics live behind this interface; the command
// layer only validates and shapes arguments.
type Engine interface {
	// Create initializes a new wallet, optionally from a mnemonic phrase.
	Create(mnemonic, passphrase string) (Result, error)

	// ListAddresses returns one page of addresses of an account. Page 0 is
	// the first page and perPage comes from the count option.
	ListAddresses(account string, page, perPage int) (Result, error)

	// NewAddresses derives one labeled address per given label.
	NewAddresses(account string, labels []string) (Result, error)

	// GenerateAddresses derives count unlabeled addresses.
	GenerateAddresses(account string, count int) (Result, error)

	// SetAddressLabel relabels the address at the given derivation index.
	SetAddressLabel(account string, index int, label string) (Result, error)

	Balance(account string) (Result, error)
	Balances() (Result, error)

	// ListTransactions returns the transactions affecting an account.
	ListTransactions(account string) (Result, error)

	Send(account, address string, amount, fee btcutil.Amount,
		sigHash txscript.SigHashType, passphrase string) (Result, error)
	SendMany(account string, dests []Destination, fee btcutil.Amount,
		sigHash txscript.SigHashType, passphrase string) (Result, error)

	NewAccount(name string) (Result, error)
	NewMultisigAccount(name string, required, total int,
		keys []*hdkeychain.ExtendedKey) (Result, error)
	AddAccountKeys(account string, keys []*hdkeychain.ExtendedKey) (Result, error)
	AccountInfo(account string) (Result, error)
	ListAccounts() (Result, error)

	// DumpKeys returns the extended keys of an account.
	DumpKeys(account string) (Result, error)

	// DumpWIF returns the private key of one address in WIF.
	DumpWIF(account string, index int) (Result, error)

	Coins(account string) (Result, error)
	AllCoins() (Result, error)

	SignTx(account string, tx *wire.MsgTx, sigHash txscript.SigHashType,
		passphrase string) (Result, error)
	ImportTx(tx *wire.MsgTx) (Result, error)
	RemoveTx(txid *chainhash.Hash) (Result, error)
	DecodeTx(tx *wire.MsgTx) (Result, error)

	// BuildRawTx builds an unsigned transaction from JSON-encoded input
	// and output descriptions.
	BuildRawTx(inputs, outputs json.RawMessage) (Result, error)

	// SignRawTx signs a raw transaction with detached signing data and
	// keys, both JSON-encoded.
	SignRawTx(tx *wire.MsgTx, sigData, keys json.RawMessage,
		sigHash txscript.SigHashType) (Result, error)
}
