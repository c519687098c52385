// Copyright 2018-2020 The hw developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
package config

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcutil"
)

// Config holds the global hw options. It is filled in exactly once by
// LoadConfig and never mutated afterwards; every command sees the same
// record for the whole invocation.
type Config struct {
	Count        int         `short:"c" long:"count" description:"Number of addresses to generate or results to return per page"`
	SigHash      SigHashFlag `short:"s" long:"sighash" description:"Signature hash type {ALL|NONE|SINGLE}"`
	AnyOneCanPay bool        `short:"a" long:"anyonecanpay" description:"Set the AnyOneCanPay bit on the signature hash type"`
	Fee          int64       `short:"f" long:"fee" description:"Transaction fee in satoshi"`
	Json         bool        `short:"j" long:"json" description:"Display the result as indented JSON instead of the default block format"`
	ShowVersion  bool        `short:"v" long:"version" description:"Display version information and exit"`
	Passphrase   string      `short:"p" long:"passphrase" default-mask:"-" description:"Passphrase protecting the wallet keys"`

	// Wallet engine connection.
	RPCServer     string `long:"server" description:"Wallet engine RPC server to connect to"`
	RPCUser       string `short:"u" long:"user" description:"Wallet engine RPC username"`
	RPCPassword   string `short:"P" long:"password" default-mask:"-" description:"Wallet engine RPC password"`
	RPCCert       string `long:"cert" description:"Wallet engine RPC server certificate file path"`
	NoTLS         bool   `long:"notls" description:"Connect to the wallet engine without TLS"`
	TLSSkipVerify bool   `long:"skipverify" description:"Do not verify the wallet engine tls certificate (not recommended!)"`
	Proxy         string `long:"proxy" description:"Connect to the wallet engine via SOCKS5 proxy (eg. 127.0.0.1:9050)"`
	ProxyUser     string `long:"proxyuser" description:"Username for proxy server"`
	ProxyPass     string `long:"proxypass" default-mask:"-" description:"Password for proxy server"`
}

// SigHashType combines the base sighash mode with the AnyOneCanPay bit.
// The two flags are independent, so -a composes with -s in any order.
func (c *Config) SigHashType() txscript.SigHashType {
	hashType := txscript.SigHashType(c.SigHash)
	if c.AnyOneCanPay {
		hashType |= txscript.SigHashAnyOneCanPay
	}
	return hashType
}

// TxFee returns the configured flat transaction fee.
func (c *Config) TxFee() btcutil.Amount {
	return btcutil.Amount(c.Fee)
}
