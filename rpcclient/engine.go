// Copyright 2018-2020 The hw developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package rpcclient

import (
	"encoding/json"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcutil/hdkeychain"

	"github.com/hwallet/hw/wallet"
)

var _ wallet.Engine = (*Client)(nil)

// Transactions travel as hex, keys in their base58 string form, amounts as
// integer satoshis and the sighash type as its numeric value.

func (c *Client) Create(mnemonic, passphrase string) (wallet.Result, error) {
	return c.call("createwallet", []interface{}{mnemonic, passphrase})
}

func (c *Client) ListAddresses(account string, page, perPage int) (wallet.Result, error) {
	return c.call("listaddresses", []interface{}{account, page, perPage})
}

func (c *Client) NewAddresses(account string, labels []string) (wallet.Result, error) {
	return c.call("newaddresses", []interface{}{account, labels})
}

func (c *Client) GenerateAddresses(account string, count int) (wallet.Result, error) {
	return c.call("generateaddresses", []interface{}{account, count})
}

func (c *Client) SetAddressLabel(account string, index int, label string) (wallet.Result, error) {
	return c.call("setaddresslabel", []interface{}{account, index, label})
}

func (c *Client) Balance(account string) (wallet.Result, error) {
	return c.call("getbalance", []interface{}{account})
}

func (c *Client) Balances() (wallet.Result, error) {
	return c.call("getbalances", []interface{}{})
}

func (c *Client) ListTransactions(account string) (wallet.Result, error) {
	return c.call("listtransactions", []interface{}{account})
}

func (c *Client) Send(account, address string, amount, fee btcutil.Amount,
	sigHash txscript.SigHashType, passphrase string) (wallet.Result, error) {
	return c.call("sendtoaddress", []interface{}{
		account, address, int64(amount), int64(fee), uint32(sigHash), passphrase,
	})
}

func (c *Client) SendMany(account string, dests []wallet.Destination, fee btcutil.Amount,
	sigHash txscript.SigHashType, passphrase string) (wallet.Result, error) {
	return c.call("sendmany", []interface{}{
		account, dests, int64(fee), uint32(sigHash), passphrase,
	})
}

func (c *Client) NewAccount(name string) (wallet.Result, error) {
	return c.call("newaccount", []interface{}{name})
}

func (c *Client) NewMultisigAccount(name string, required, total int,
	keys []*hdkeychain.ExtendedKey) (wallet.Result, error) {
	return c.call("newmultisigaccount", []interface{}{
		name, required, total, keyStrings(keys),
	})
}

func (c *Client) AddAccountKeys(account string, keys []*hdkeychain.ExtendedKey) (wallet.Result, error) {
	return c.call("addaccountkeys", []interface{}{account, keyStrings(keys)})
}

func (c *Client) AccountInfo(account string) (wallet.Result, error) {
	return c.call("getaccountinfo", []interface{}{account})
}

func (c *Client) ListAccounts() (wallet.Result, error) {
	return c.call("listaccounts", []interface{}{})
}

func (c *Client) DumpKeys(account string) (wallet.Result, error) {
	return c.call("dumpkeys", []interface{}{account})
}

func (c *Client) DumpWIF(account string, index int) (wallet.Result, error) {
	return c.call("dumpwif", []interface{}{account, index})
}

func (c *Client) Coins(account string) (wallet.Result, error) {
	return c.call("listcoins", []interface{}{account})
}

func (c *Client) AllCoins() (wallet.Result, error) {
	return c.call("listallcoins", []interface{}{})
}

func (c *Client) SignTx(account string, tx *wire.MsgTx, sigHash txscript.SigHashType,
	passphrase string) (wallet.Result, error) {
	txHex, err := wallet.EncodeTx(tx)
	if err != nil {
		return nil, err
	}
	return c.call("signtransaction", []interface{}{account, txHex, uint32(sigHash), passphrase})
}

func (c *Client) ImportTx(tx *wire.MsgTx) (wallet.Result, error) {
	txHex, err := wallet.EncodeTx(tx)
	if err != nil {
		return nil, err
	}
	return c.call("importtransaction", []interface{}{txHex})
}

func (c *Client) RemoveTx(txid *chainhash.Hash) (wallet.Result, error) {
	return c.call("removetransaction", []interface{}{txid.String()})
}

func (c *Client) DecodeTx(tx *wire.MsgTx) (wallet.Result, error) {
	txHex, err := wallet.EncodeTx(tx)
	if err != nil {
		return nil, err
	}
	return c.call("decodetransaction", []interface{}{txHex})
}

func (c *Client) BuildRawTx(inputs, outputs json.RawMessage) (wallet.Result, error) {
	return c.call("buildrawtransaction", []interface{}{inputs, outputs})
}

func (c *Client) SignRawTx(tx *wire.MsgTx, sigData, keys json.RawMessage,
	sigHash txscript.SigHashType) (wallet.Result, error) {
	txHex, err := wallet.EncodeTx(tx)
	if err != nil {
		return nil, err
	}
	return c.call("signrawtransaction", []interface{}{txHex, sigData, keys, uint32(sigHash)})
}

func keyStrings(keys []*hdkeychain.ExtendedKey) []string {
	strs := make([]string, 0, len(keys))
	for _, key := range keys {
		strs = append(strs, key.String())
	}
	return strs
}
